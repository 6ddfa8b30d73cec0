// Package links extracts and validates X/Twitter post links found in
// free-form message text. Everything here is pure and stateless.
package links

import (
	"regexp"
	"strings"
)

// DefaultMaxPerMessage caps how many candidates are pulled out of a
// single message. Excess candidates are simply not extracted.
const DefaultMaxPerMessage = 30

var urlPattern = regexp.MustCompile(`(?i)https?://(?:www\.|mobile\.|m\.)?(?:twitter\.com|x\.com)/[^\s<>"'` + "`" + `]+`)

const trailingPunct = ".,;!?)"

// Extractor pulls post-link candidates out of free text.
type Extractor struct {
	max int
}

// NewExtractor builds an extractor; max <= 0 falls back to
// DefaultMaxPerMessage.
func NewExtractor(max int) *Extractor {
	if max <= 0 {
		max = DefaultMaxPerMessage
	}
	return &Extractor{max: max}
}

// Extract returns the candidate links in text, first-occurrence order,
// deduplicated after trailing punctuation is stripped. Never more than
// the configured cap.
func (e *Extractor) Extract(text string) []string {
	raw := urlPattern.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		cleaned := strings.TrimRight(u, trailingPunct)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
		if len(out) == e.max {
			break
		}
	}
	return out
}
