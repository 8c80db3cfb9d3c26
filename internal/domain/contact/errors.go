package contact

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrAccountNotFound = errors.New("owning account not found")
)
