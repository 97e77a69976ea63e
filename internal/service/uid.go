package service

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeUID strips all whitespace from a scanned card identifier and
// uppercases it. Readers report the same card as "04 A1 B2" or "04A1B2"
// depending on firmware.
func NormalizeUID(uid string) string {
	return strings.ToUpper(whitespace.ReplaceAllString(uid, ""))
}

// UIDMatchPattern builds a case-insensitive regex source that matches the
// normalized UID with zero or more whitespace characters between every
// character, applied against the stored uid column.
func UIDMatchPattern(uid string) string {
	clean := NormalizeUID(uid)
	parts := make([]string, 0, len(clean))
	for _, ch := range clean {
		parts = append(parts, regexp.QuoteMeta(string(ch)))
	}
	return "^\\s*" + strings.Join(parts, "\\s*") + "\\s*$"
}
