package lead

type CreateLeadRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=120"`
	LastName    string `json:"last_name" validate:"max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=32"`
	CompanyName string `json:"company_name" validate:"max=255"`
	Source      string `json:"source" validate:"max=64"`
	Score       int    `json:"lead_score" validate:"min=0,max=100"`
	Notes       string `json:"notes"`
}

type UpdateLeadRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=120"`
	LastName    *string `json:"last_name" validate:"omitempty,max=120"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
	Source      *string `json:"source" validate:"omitempty,max=64"`
	Score       *int    `json:"lead_score" validate:"omitempty,min=0,max=100"`
	Notes       *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status Status `json:"lead_status" validate:"required,oneof=new contacted qualified unqualified nurturing disqualified lost"`
}

// ConvertRequest carries the fields of the lead conversion dialog. The
// create flags and the corresponding ids are mutually exclusive; the
// combination rules live in BuildPayload, not in the validation tags.
type ConvertRequest struct {
	OpportunityTitle       string `json:"opportunity_title" validate:"omitempty,max=255"`
	OpportunityDescription string `json:"opportunity_description"`
	StageID                string `json:"stage_id" validate:"required,uuid"`
	Value                  int64  `json:"value" validate:"min=0"`
	Probability            int    `json:"probability" validate:"min=0,max=100"`
	ExpectedCloseDate      string `json:"expected_close_date" validate:"omitempty,datetime=2006-01-02"`
	CreateAccount          bool   `json:"create_account"`
	CreateContact          bool   `json:"create_contact"`
	AccountID              string `json:"account_id" validate:"omitempty,uuid"`
	ContactID              string `json:"contact_id" validate:"omitempty,uuid"`
}

type ListParams struct {
	Search  string
	Status  string
	PerPage int
	Page    int
}

type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}
