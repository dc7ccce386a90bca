package migrate

import (
	"regexp"
	"strings"
)

// Integer-reference placeholders like %(module.xml_id)d are not valid
// literal syntax, so they are quote-wrapped before parsing and unwrapped
// again on the serialized document. The two substitutions are exact
// inverses of each other.
var (
	protectRe   = regexp.MustCompile(`(%\([a-zA-Z_.]+\))d`)
	unprotectRe = regexp.MustCompile(`'(%\([a-zA-Z_.]+\)d)'`)
)

func protectPlaceholders(s string) string {
	return protectRe.ReplaceAllString(s, "'${1}d'")
}

func unprotectPlaceholders(s string) string {
	return unprotectRe.ReplaceAllString(s, "${1}")
}

// restoreDeclarationQuotes converts the quotes in the XML declaration
// back to double quotes. Only the declaration is touched.
func restoreDeclarationQuotes(s string) string {
	idx := strings.Index(s, "?>")
	if idx < 0 {
		return s
	}
	return strings.ReplaceAll(s[:idx+2], "'", `"`) + s[idx+2:]
}
