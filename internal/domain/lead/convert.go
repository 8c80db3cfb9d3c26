package lead

// ConversionPayload is the body applied by the conversion transaction.
// Create flags and ids have already passed the combination checks.
type ConversionPayload struct {
	OpportunityTitle       string `json:"opportunity_title"`
	OpportunityDescription string `json:"opportunity_description,omitempty"`
	StageID                string `json:"stage_id"`
	Value                  int64  `json:"value,omitempty"`
	Probability            int    `json:"probability,omitempty"`
	ExpectedCloseDate      string `json:"expected_close_date,omitempty"`
	CreateAccount          bool   `json:"create_account"`
	CreateContact          bool   `json:"create_contact"`
	AccountID              string `json:"account_id,omitempty"`
	ContactID              string `json:"contact_id,omitempty"`
}

// BuildPayload turns a conversion request into the payload the conversion
// transaction applies. It is pure and enforces the guards that must hold
// before anything touches the database:
//
//   - only a qualified lead converts
//   - create_account excludes account_id, create_contact excludes contact_id
//   - creating an account requires the lead to carry a company name
//   - not creating an account requires an existing account to be selected
//
// A request carrying both a create flag and an id is rejected outright
// rather than silently preferring one side; hidden selector state must not
// leak into a submitted conversion.
func BuildPayload(l *Lead, req ConvertRequest) (*ConversionPayload, error) {
	if l.Status != StatusQualified {
		if l.Status == StatusConverted {
			return nil, ErrLeadConverted
		}
		return nil, ErrLeadNotQualified
	}

	if req.CreateAccount && req.AccountID != "" {
		return nil, ErrInvalidCombination
	}
	if req.CreateContact && req.ContactID != "" {
		return nil, ErrInvalidCombination
	}
	if req.CreateAccount && l.CompanyName == "" {
		return nil, ErrMissingAccountName
	}
	if !req.CreateAccount && req.AccountID == "" {
		return nil, ErrAccountRequired
	}

	title := req.OpportunityTitle
	if title == "" {
		title = DefaultTitle(l)
	}

	return &ConversionPayload{
		OpportunityTitle:       title,
		OpportunityDescription: req.OpportunityDescription,
		StageID:                req.StageID,
		Value:                  req.Value,
		Probability:            req.Probability,
		ExpectedCloseDate:      req.ExpectedCloseDate,
		CreateAccount:          req.CreateAccount,
		CreateContact:          req.CreateContact,
		AccountID:              req.AccountID,
		ContactID:              req.ContactID,
	}, nil
}

// DefaultTitle derives the opportunity title shown when the dialog opens,
// preferring the company name and falling back to the first name.
func DefaultTitle(l *Lead) string {
	if l.CompanyName != "" {
		return l.CompanyName + " - Opportunity"
	}
	return l.FirstName + " - Opportunity"
}

// FieldVisibility says which selectors the conversion dialog shows for the
// current toggle state.
type FieldVisibility struct {
	ShowAccountSelector bool `json:"show_account_selector"`
	ShowContactSelector bool `json:"show_contact_selector"`
}

// VisibleFields is a pure function of the two create toggles and the
// chosen account. The contact selector only appears once an account is
// selected, since contacts are scoped to an account.
func VisibleFields(createAccount, createContact bool, accountID string) FieldVisibility {
	return FieldVisibility{
		ShowAccountSelector: !createAccount,
		ShowContactSelector: !createContact && accountID != "",
	}
}
