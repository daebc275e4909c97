package mdlx

import "errors"

// Invariant violations. They are returned before any state changes.
var (
	ErrNilObject        = errors.New("nil object")
	ErrForeignModel     = errors.New("object belongs to a different model")
	ErrAlreadyContained = errors.New("object already belongs to a container")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrStaticAnimator   = errors.New("animator is static")
)
