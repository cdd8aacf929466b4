// Package timeutil holds small helpers for the RFC3339 string timestamps
// platform DTOs carry.
package timeutil

import "time"

// ParsePtr parses an RFC3339 string pointer into *time.Time in UTC.
// Returns nil if the input is nil, empty, or unparsable.
func ParsePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// FormatPtr formats a time pointer as an RFC3339 string pointer in UTC.
// Returns nil for nil input.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// OrZero returns the dereferenced time or the zero time if nil.
func OrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
