package models

import "strings"

// JoinTags converts the wire representation of tags into the stored form:
// elements joined with a single comma. A tag that itself contains a comma
// will not survive a round trip; that is a known limitation of the storage
// format and is not corrected here.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags converts the stored form back into the wire form: split on
// commas, each element trimmed of surrounding whitespace. Empty segments are
// preserved as empty strings. An empty stored string yields an empty slice.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
