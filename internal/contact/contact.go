// Package contact validates the contact form and fakes its delivery.
package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalid        = errors.New("contact: invalid form")
	ErrDeliveryFailed = errors.New("contact: delivery failed")
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

type Form struct {
	Name    string
	Email   string
	Message string
}

// Get returns the raw value of f.
func (fm Form) Get(f Field) string {
	switch f {
	case FieldName:
		return fm.Name
	case FieldEmail:
		return fm.Email
	case FieldMessage:
		return fm.Message
	}
	return ""
}

// Set stores v into f.
func (fm *Form) Set(f Field, v string) {
	switch f {
	case FieldName:
		fm.Name = v
	case FieldEmail:
		fm.Email = v
	case FieldMessage:
		fm.Message = v
	}
}

// Errors maps each invalid field to its message.
type Errors map[Field]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for f := range e {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[Field(k)]
	}
	return strings.Join(parts, "; ")
}

// Validate checks the trimmed fields and returns nil when the form is valid.
func Validate(f Form) Errors {
	errs := Errors{}
	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < 2 {
		errs[FieldName] = "Enter your name."
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs[FieldEmail] = "Enter a valid email."
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Message)) < 5 {
		errs[FieldMessage] = "Message too short."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Rand decides whether a simulated delivery succeeds.
type Rand interface {
	Float64() float64
}

// Submitter pretends to send the form: it waits Delay and then fails with
// probability FailureRate.
type Submitter struct {
	Delay       time.Duration
	FailureRate float64
	rng         Rand
}

func NewSubmitter(delay time.Duration, failureRate float64, rng Rand) *Submitter {
	return &Submitter{Delay: delay, FailureRate: failureRate, rng: rng}
}

// Submit validates f, waits for the delivery delay and reports the outcome.
// Invalid forms return an error wrapping both ErrInvalid and Errors.
func (s *Submitter) Submit(ctx context.Context, f Form) error {
	if errs := Validate(f); errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, errs)
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if s.rng.Float64() > s.FailureRate {
		return nil
	}
	return ErrDeliveryFailed
}
