package lead

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrLeadConverted      = errors.New("lead already converted")
	ErrLeadNotQualified   = errors.New("only qualified leads can be converted")
	ErrInvalidTransition  = errors.New("invalid lead status transition")
	ErrInvalidCombination = errors.New("create flag and existing id are mutually exclusive")
	ErrAccountRequired    = errors.New("an account must be selected or created")
	ErrMissingAccountName = errors.New("lead has no company name to create an account from")
	ErrStageNotFound      = errors.New("pipeline stage not found")
	ErrStageInactive      = errors.New("pipeline stage is not active")
)
