// Package validation schema-checks incoming create and update payloads before
// they reach the store. Each validator returns either the normalized payload or
// an INVALID_INPUT error carrying a field name -> messages map.
package validation

import (
	"net/mail"
	"time"
)

type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

func (f fieldErrors) empty() bool {
	return len(f) == 0
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
