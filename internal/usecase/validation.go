package usecase

import (
	"strings"
	"time"
)

// ValidationError carries every rule a payload broke. Nothing is persisted
// when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation errors: " + strings.Join(e.Messages, "; ")
}

type validator struct {
	messages []string
}

func (v *validator) require(value, message string) {
	if strings.TrimSpace(value) == "" {
		v.messages = append(v.messages, message)
	}
}

func (v *validator) check(ok bool, message string) {
	if !ok {
		v.messages = append(v.messages, message)
	}
}

func (v *validator) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}

// Clock returns the current time. Use cases take one so reports and date
// rules can be pinned in tests.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }

// dateOnly drops the time of day, keeping the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
