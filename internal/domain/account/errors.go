package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNameExists      = errors.New("account name already exists")
)
