package model

// InvalidInputError reports a signal that violates its documented range or
// a consistency invariant between inputs.
type InvalidInputError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Field + ": " + e.Reason
}
