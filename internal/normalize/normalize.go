// Package normalize cleans extracted page text into a stable textual form.
package normalize

import (
	"regexp"
	"strings"
)

// disallowed matches every run of characters outside the allowed set:
// alphanumerics (plus underscore), spaces, periods, hyphens and plus signs.
var disallowed = regexp.MustCompile(`[^\w .\-+]+`)

// Text joins the given fragments with single spaces, removes every character
// outside the allowed set and trims surrounding whitespace. It is pure and
// idempotent: normalizing already-normalized text returns it unchanged.
func Text(parts ...string) string {
	joined := strings.Join(parts, " ")
	cleaned := disallowed.ReplaceAllString(joined, "")
	return strings.TrimSpace(cleaned)
}
