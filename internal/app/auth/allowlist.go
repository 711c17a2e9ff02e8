// Package auth holds the privilege model: admin access is an email
// allow-list configured outside the data path, not a role column.
package auth

import "strings"

// AllowList answers whether a verified email belongs to an admin.
// Matching is pure and stateless: both sides are compared trimmed and
// lowercased, so " Admin@X.com " and "admin@x.com" are the same caller.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an AllowList from configured admin addresses
func NewAllowList(emails []string) *AllowList {
	normalized := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = normalize(e)
		if e == "" {
			continue
		}
		normalized[e] = struct{}{}
	}
	return &AllowList{emails: normalized}
}

// IsAdmin reports whether the email is on the allow-list
func (a *AllowList) IsAdmin(email string) bool {
	if a == nil {
		return false
	}
	e := normalize(email)
	if e == "" {
		return false
	}
	_, ok := a.emails[e]
	return ok
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
