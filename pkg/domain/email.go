package domain

import "errors"

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Email is an outgoing message handed to the mail transport.
// Bcc carries batch recipients, To may be empty in that case.
type Email struct {
	To      []string
	Bcc     []string
	Subject string
	HTML    string
}

// Recipients returns the number of addresses the message goes to
func (e Email) Recipients() int {
	return len(e.To) + len(e.Bcc)
}
