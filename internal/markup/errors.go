// Package markup converts a profile section's HTML fragment into typed records.
package markup

import "fmt"

// ParseError represents a failure to parse a section's HTML fragment.
type ParseError struct {
	Section string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup parse error: %s section: %v", e.Section, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
