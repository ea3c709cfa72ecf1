package model

import (
	"strings"
	"time"
)

// TrimToNull trims s and returns nil when nothing remains. Every write
// boundary (create form, edit form, CLI flags) goes through this so blank
// and whitespace-only inputs serialize identically.
func TrimToNull(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseDueDate converts a YYYY-MM-DD input to midnight UTC, or nil when the
// input is blank. Malformed input is reported so forms can keep the draft.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDueDate renders an optional due date back into the YYYY-MM-DD form
// the date inputs use. Inverse of ParseDueDate for edit-draft snapshots.
func FormatDueDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// NewDraft builds a normalized Draft from raw field inputs. An invalid
// priority falls back to medium, matching the backend default.
func NewDraft(title, description string, priority Priority, category, dueDate string) (Draft, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return Draft{}, err
	}
	if !priority.Valid() {
		priority = PriorityMedium
	}
	return Draft{
		Title:       strings.TrimSpace(title),
		Description: TrimToNull(description),
		Priority:    priority,
		Category:    TrimToNull(category),
		DueDate:     due,
	}, nil
}
