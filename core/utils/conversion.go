package utils

import "strings"

// truthy lists the spellings accepted as an enabled switch.
var truthy = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"on":   {},
}

// IsTruthy reports whether a free-form setting spells an enabled switch.
// Matching is case-insensitive and ignores surrounding whitespace.
func IsTruthy(s string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
