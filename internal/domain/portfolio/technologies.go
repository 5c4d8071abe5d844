package portfolio

import "strings"

// SplitTechnologies turns the stored comma-joined string into the
// external list form. Elements are trimmed and empties dropped, so
// "Python, Django" and "Python,Django" parse to the same list.
func SplitTechnologies(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// JoinTechnologies is the canonical inverse: elements trimmed, empties
// dropped, joined with ", ". A list produced by SplitTechnologies
// round-trips to the normalized stored form.
func JoinTechnologies(list []string) string {
	parts := make([]string, 0, len(list))
	for _, it := range list {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		parts = append(parts, it)
	}
	return strings.Join(parts, ", ")
}
