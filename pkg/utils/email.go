package utils

import "strings"

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitEmail returns the local part and domain of a normalized address.
// ok is false when the address has no single "@" separating two non-empty parts.
func SplitEmail(email string) (local, domain string, ok bool) {
	email = NormalizeEmail(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", "", false
	}
	local, domain = email[:at], email[at+1:]
	if strings.Contains(local, "@") {
		return "", "", false
	}
	return local, domain, true
}
