package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrUnknownMode     = errors.New("unknown validation mode")
	ErrNilCandidate    = errors.New("nil candidate given")
	ErrNoCedulaChecker = errors.New("cedula uniqueness check requested but no checker is configured")

	ErrNameRequired    = errors.New("name is required")
	ErrDuplicateCedula = errors.New("cedula is already registered")
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidAge      = errors.New("age must be positive")
	ErrAddressRequired = errors.New("address is required")

	// ErrUniquenessCheckFailed wraps a failure of the storage collaborator.
	// It is never returned as a [*FieldError].
	ErrUniquenessCheckFailed = errors.New("cedula uniqueness check failed")
)
