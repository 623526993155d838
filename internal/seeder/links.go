package seeder

// resolveSlugs maps slugs to IDs through ids, logging a skip for each slug
// that has not been seeded. A nil slugs list means every ID seeded so far.
func (s *Seeder) resolveSlugs(ids *IDMap, slugs []string, kind, name, what string) []string {
	if slugs == nil {
		return ids.IDs()
	}

	resolved := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		id, ok := ids.Lookup(slug)
		if !ok {
			s.report.Skip(kind, name+" → "+slug, what+" not in context")
			continue
		}
		resolved = append(resolved, id)
	}
	return resolved
}

// withFallback keeps the statically configured IDs when nothing resolved.
func withFallback(resolved, static []string) []string {
	if len(resolved) > 0 {
		return resolved
	}
	return static
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
