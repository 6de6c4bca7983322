package dedalog

import "errors"

// Sentinel error kinds. Every error the engine returns wraps one of
// these via fmt.Errorf("...: %w", ...) so callers can keep using
// errors.Is after the message gains positional detail.
var (
	ErrParse             = errors.New("dedalog: parse error")
	ErrValidation        = errors.New("dedalog: validation error")
	ErrNegativeRecursion = errors.New("dedalog: negative recursion")
	ErrUnboundBuiltin    = errors.New("dedalog: unbound built-in operand")
	ErrInternalInvariant = errors.New("dedalog: internal invariant violated")
)
