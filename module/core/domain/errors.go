package domain

// ValidationError rejects a sample or zone definition before any state
// is touched. It is permanent: resubmitting the same input fails again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
