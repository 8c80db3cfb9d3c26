package contact

type CreateContactRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
	Role      string `json:"role" validate:"omitempty,max=64"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Email     string `json:"email" validate:"omitempty,email"`
	Notes     string `json:"notes"`
}

type UpdateContactRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,max=255"`
	Role      *string `json:"role" validate:"omitempty,max=64"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Notes     *string `json:"notes"`
}

type ContactListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int64     `json:"total"`
}
