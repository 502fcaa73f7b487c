package util

import "strings"

// Truthy reports whether s spells out an enabled boolean value.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}

	return false
}
