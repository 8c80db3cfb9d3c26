package visit

type CheckInRequest struct {
	AccountID string  `json:"account_id" validate:"required,uuid"`
	ContactID *string `json:"contact_id" validate:"omitempty,uuid"`
	Location  string  `json:"location" validate:"max=255"`
	Notes     string  `json:"notes"`
}

type CheckOutRequest struct {
	Notes string `json:"notes"`
}

type VisitListResponse struct {
	Visits []VisitReport `json:"visits"`
	Total  int64         `json:"total"`
}
