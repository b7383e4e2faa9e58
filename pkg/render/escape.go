package render

import "strings"

var escaper = strings.NewReplacer(`"`, `\"`)

// Escape replaces every double quote in s with \". No other character is
// touched, so backslashes, braces and control characters pass through as is.
func Escape(s string) string {
	return escaper.Replace(s)
}
