// Package export produces downloadable PDF and DOCX documents from a CV snapshot.
package export

import "fmt"

// Error represents an export failure for a specific output format. Callers at
// the HTTP boundary surface a single message and never ship a partial file.
type Error struct {
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export error: %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
