package contact

import (
	"context"
	"errors"
)

type Kind int

const (
	Idle Kind = iota
	Pending
	Sent
	Failed
	Invalid
)

// Status is the line shown under the form.
type Status struct {
	Kind Kind
	Text string
}

var (
	StatusIdle    = Status{Kind: Idle}
	StatusPending = Status{Kind: Pending, Text: "Sending..."}
)

// StatusFor maps the result of Submit to what the form shows.
func StatusFor(err error) Status {
	switch {
	case err == nil:
		return Status{Kind: Sent, Text: "Message sent! Thank you"}
	case errors.Is(err, ErrInvalid):
		return Status{Kind: Invalid, Text: "Please fix errors."}
	case errors.Is(err, context.Canceled):
		return StatusIdle
	default:
		return Status{Kind: Failed, Text: "Oops, something went wrong."}
	}
}

// FieldErrors extracts the per-field messages from a Submit error.
func FieldErrors(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
