package deal

import "errors"

var (
	ErrDealNotFound    = errors.New("deal not found")
	ErrDealClosed      = errors.New("deal is closed")
	ErrStageNotFound   = errors.New("pipeline stage not found")
	ErrStageInactive   = errors.New("pipeline stage is not active")
	ErrAccountNotFound = errors.New("account not found")
	ErrContactNotFound = errors.New("contact not found")
)
