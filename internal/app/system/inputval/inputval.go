// internal/app/system/inputval/inputval.go

// Package inputval holds small input validation helpers shared by the
// API features.
package inputval

import (
	"net/mail"
	"strings"
)

// ValidEmail reports whether s parses as a single RFC 5322 address with
// no display name. The dashboard sends bare addresses; anything fancier
// is rejected.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
