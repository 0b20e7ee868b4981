package types

import "errors"

// Domain errors for symbol validation
var (
	ErrMissingName        = errors.New("symbol name is required")
	ErrMissingPackage     = errors.New("package name is required")
	ErrInvalidKind        = errors.New("invalid symbol kind")
	ErrInvalidScope       = errors.New("invalid symbol scope")
	ErrMissingReceiver    = errors.New("methods and fields must have a receiver type")
	ErrUnexpectedReceiver = errors.New("only methods and fields can have a receiver type")
	ErrInvalidPosition    = errors.New("invalid position")
)
