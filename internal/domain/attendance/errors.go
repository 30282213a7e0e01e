package attendance

import "errors"

var (
	// ErrInvalidDate marks an unparseable date input. Callers must receive
	// this rather than a false classification: "invalid" and "not blocked"
	// are different answers.
	ErrInvalidDate = errors.New("invalid date")

	ErrInvalidMonth      = errors.New("invalid month, expected YYYY-MM")
	ErrNoRulesConfigured = errors.New("employee has no salary rules configured")
)
