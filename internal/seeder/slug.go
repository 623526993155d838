package seeder

import "strings"

// Slugify derives a natural key from a display name: lowercase ASCII
// letters and digits, every other run of characters collapsed to a single
// dash, no leading or trailing dash. Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func slugOr(slug, name string) string {
	if slug != "" {
		return slug
	}
	return Slugify(name)
}
