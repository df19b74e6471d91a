// Package emailaddr provides syntactic checks for recipient addresses so the
// campaign runner can skip bad rows before making any external calls.
package emailaddr

import (
	"net/mail"
	"strings"
)

// roleKeywords are local-part prefixes that identify shared mailboxes
// (info@, support@, ...) rather than a person.
var roleKeywords = []string{"info", "support", "admin", "contact", "sales", "team", "hello"}

// IsValid reports whether email is a syntactically valid bare address.
// It fails closed: any parse error yields false.
func IsValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms ("Bob <bob@x.com>"); the lead table is
	// expected to carry bare addresses.
	if addr.Address != email {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 {
		return false
	}
	domain := addr.Address[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// IsRoleBased reports whether the local part of email starts with a
// role-mailbox keyword. Purely lexical, no I/O. It does not gate sending;
// callers may use it for reporting or filtering.
func IsRoleBased(email string) bool {
	local, _, found := strings.Cut(email, "@")
	if !found {
		local = email
	}
	local = strings.ToLower(strings.TrimSpace(local))
	for _, keyword := range roleKeywords {
		if strings.HasPrefix(local, keyword) {
			return true
		}
	}
	return false
}
