package hypr

import "strings"

// Quote wraps free text in the control socket's quoting dialect: the value
// is surrounded by double quotes and any embedded double quote is escaped
// with a single backslash. No other characters are altered, and quoting is
// applied exactly once per value.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
