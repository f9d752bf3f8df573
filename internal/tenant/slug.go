package tenant

import "strings"

// Slugify derives the URL slug of a tenant name: lowercase, only
// [a-z0-9-], separators collapsed to a single '-', no '-' at either end.
// Characters outside the allowed set, tabs and newlines included, are
// dropped without leaving a gap.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || r == ' ':
			pendingDash = true
		}
	}
	return b.String()
}
