// Package normalize holds the field normalizers applied by stores before
// any write. Keeping them in one place means the join keys (email, full
// name) are normalized identically everywhere.
package normalize

import "strings"

// Email lowercases and trims an email address. Email is the identity key
// for users, so every write and every lookup must pass through here.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a person's name and collapses internal runs of whitespace.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
