package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrAlreadyDecided    = errors.New("stage already decided")
	ErrNotResubmittable  = errors.New("loan is not in a sent-back state")
)
