package deal

import "salescrm/internal/domain/pipeline"

type CreateDealRequest struct {
	Title             string  `json:"title" validate:"required,max=255"`
	Description       string  `json:"description"`
	AccountID         string  `json:"account_id" validate:"required,uuid"`
	ContactID         *string `json:"contact_id" validate:"omitempty,uuid"`
	StageID           string  `json:"stage_id" validate:"required,uuid"`
	Value             int64   `json:"value" validate:"min=0"`
	Probability       int     `json:"probability" validate:"min=0,max=100"`
	ExpectedCloseDate string  `json:"expected_close_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDealRequest struct {
	Title             *string `json:"title" validate:"omitempty,max=255"`
	Description       *string `json:"description"`
	Value             *int64  `json:"value" validate:"omitempty,min=0"`
	Probability       *int    `json:"probability" validate:"omitempty,min=0,max=100"`
	ExpectedCloseDate *string `json:"expected_close_date" validate:"omitempty,datetime=2006-01-02"`
}

type MoveStageRequest struct {
	StageID string `json:"stage_id" validate:"required,uuid"`
}

type DealListResponse struct {
	Deals []Deal `json:"deals"`
	Total int64  `json:"total"`
}

// KanbanColumn is one pipeline stage with its open deals, in board order.
// TotalValue is in sen; TotalValueDisplay is the same amount rendered in
// display currency for board headers.
type KanbanColumn struct {
	Stage             pipeline.Stage `json:"stage"`
	Deals             []Deal         `json:"deals"`
	TotalValue        int64          `json:"total_value"`
	TotalValueDisplay string         `json:"total_value_display"`
}

type KanbanResponse struct {
	Columns []KanbanColumn `json:"columns"`
}
