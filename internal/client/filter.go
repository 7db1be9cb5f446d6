package client

import "strings"

// Criteria narrows the cached job list. Location is matched against the
// job's location and Field against its title, both as case-insensitive
// substrings. When both are set, both must hold. An empty key places no
// constraint, so the zero Criteria is the identity filter.
type Criteria struct {
	Location string
	Field    string
}

func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Location) == "" && strings.TrimSpace(c.Field) == ""
}

// Filter derives the visible subset of jobs for the given criteria. It is
// pure: no server calls, no mutation of the input slice.
func Filter(jobs []Job, c Criteria) []Job {
	if c.Empty() {
		out := make([]Job, len(jobs))
		copy(out, jobs)
		return out
	}

	location := normalizeTerm(c.Location)
	field := normalizeTerm(c.Field)

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if location != "" && !containsFold(j.Location, location) {
			continue
		}
		if field != "" && !containsFold(j.Title, field) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
