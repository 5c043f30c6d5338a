package app

import "regexp"

// Github username: 1-39 chars, alphanumeric and hyphen,
// can't start or end with a hyphen.
var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// ValidUsername reports whether s is acceptable as a github username.
// Callers must reject invalid usernames before running the stats pipeline.
func ValidUsername(s string) bool {
	return usernameRegexp.MatchString(s)
}
