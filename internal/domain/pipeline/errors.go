package pipeline

import "errors"

var (
	ErrStageNotFound = errors.New("pipeline stage not found")
	ErrStageInactive = errors.New("pipeline stage is not active")
	ErrStageInUse    = errors.New("pipeline stage has deals and cannot be deleted")
)
