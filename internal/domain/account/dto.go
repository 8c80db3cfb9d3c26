package account

type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category" validate:"omitempty,max=64"`
}

type UpdateAccountRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Category *string `json:"category" validate:"omitempty,max=64"`
	Status   *Status `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ListParams struct {
	Search  string
	Status  string
	PerPage int
	Page    int
}

type AccountListResponse struct {
	Accounts []Account `json:"accounts"`
	Total    int64     `json:"total"`
}
