// Package entities detects financial-instrument mentions with a fixed,
// ordered set of patterns. Detection is intentionally shallow: no
// disambiguation, no intensity, just normalized mentions.
package entities

import (
	"regexp"
	"strings"
)

// patterns are applied in order; every pattern scans the whole message.
// Order matters only for first-seen dedup across pattern boundaries.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b[a-z]+(?:\s[a-z]+)?\s(?:mutual\s)?fund\b`),
	regexp.MustCompile(`(?i)\b[a-z]+\sbonds?\b`),
	regexp.MustCompile(`(?i)\b[a-z]+\setfs?\b`),
	regexp.MustCompile(`\b[A-Z]{3,6}(?:\.NS|\.BO)\b`),
	regexp.MustCompile(`(?i)\bSIP\b`),
	regexp.MustCompile(`(?i)\bPPF\b`),
	regexp.MustCompile(`(?i)\bELSS\b`),
	regexp.MustCompile(`(?i)\bNPS\b`),
	regexp.MustCompile(`(?i)\bFD\b`),
	regexp.MustCompile(`(?i)\bgold\b`),
	regexp.MustCompile(`(?i)\breal\sestate\b|\bproperty\b`),
}

// Extract returns every recognized instrument mention, deduplicated
// case-insensitively with first-seen order preserved. It never fails; an
// unmatched message yields an empty slice.
func Extract(message string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, p := range patterns {
		for _, match := range p.FindAllString(message, -1) {
			key := strings.ToLower(strings.TrimSpace(match))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, strings.TrimSpace(match))
		}
	}

	return out
}
