package pipeline

type CreateStageRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	SortOrder int    `json:"order" validate:"min=0"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
	IsWon     bool   `json:"is_won"`
	IsLost    bool   `json:"is_lost"`
}

type UpdateStageRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	SortOrder *int    `json:"order" validate:"omitempty,min=0"`
	Color     *string `json:"color" validate:"omitempty,hexcolor"`
	IsActive  *bool   `json:"is_active"`
	IsWon     *bool   `json:"is_won"`
	IsLost    *bool   `json:"is_lost"`
}
