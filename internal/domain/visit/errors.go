package visit

import "errors"

var (
	ErrVisitNotFound   = errors.New("visit not found")
	ErrNoOpenVisit     = errors.New("no open visit to check out of")
	ErrVisitOpen       = errors.New("an open visit already exists")
	ErrAccountNotFound = errors.New("account not found")
)
