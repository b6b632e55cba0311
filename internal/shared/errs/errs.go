package errs

import "errors"

// Boundary error kinds. Domain code wraps these with fmt.Errorf("...: %w", err)
// so errors.Is keeps working across layers; the HTTP layer maps each kind to a
// status code and a {kind, message} body.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrExpiredCredential   = errors.New("expired credential")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Kind returns the wire name for an error's taxonomy kind, or "internal"
// when the error does not belong to the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidationFailed):
		return "validation_failed"
	case errors.Is(err, ErrExpiredCredential):
		return "expired_credential"
	case errors.Is(err, ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "internal"
	}
}
