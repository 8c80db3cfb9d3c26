package dashboard

// StageTotal is the summed open deal value for one pipeline stage.
type StageTotal struct {
	StageID    string `json:"stage_id"`
	StageName  string `json:"stage_name"`
	SortOrder  int    `json:"order"`
	DealCount  int64  `json:"deal_count"`
	TotalValue int64  `json:"total_value"`
}

// Summary is the dashboard payload: lead funnel counts, per-stage deal
// value and the overall win rate. Monetary values are in sen.
type Summary struct {
	LeadCounts  map[string]int64 `json:"lead_counts"`
	StageTotals []StageTotal     `json:"stage_totals"`
	OpenDeals   int64            `json:"open_deals"`
	WonDeals    int64            `json:"won_deals"`
	LostDeals   int64            `json:"lost_deals"`
	WinRate     float64          `json:"win_rate"`
}
