package vecmath

import "errors"

// Option value parsing errors.
//
// Design decision: We use two package-level sentinel errors mirroring the
// two ways a structured option value can be malformed: a syntax error
// (wrong token count) and a value error (a token that is not a number).
// Callers distinguish them with errors.Is; dynamic context (the offending
// token, the expected arity) is attached with fmt.Errorf and %w.
var (
	// ErrMissingParameter is returned when the number of tokens supplied
	// for an option does not match the declared arity.
	ErrMissingParameter = errors.New("wrong number of values for option")

	// ErrInvalidValue is returned when a token cannot be parsed with the
	// declared numeric type. No partial tuple is ever returned.
	ErrInvalidValue = errors.New("invalid option value")
)
