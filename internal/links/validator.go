package links

import (
	"regexp"
	"strings"
)

var (
	handlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(?:www\.)?(?:twitter\.com|x\.com)/([^/\?]+)(?:/status/\d+|/\d+)`),
		regexp.MustCompile(`(?i)https?://(?:www\.)?(?:twitter\.com|x\.com)/([^/\?]+)`),
		regexp.MustCompile(`(?i)https?://(?:mobile\.)?(?:twitter\.com|x\.com)/([^/\?]+)(?:/status/\d+|/\d+)`),
	}
	postIDPattern = regexp.MustCompile(`/status/(\d+)`)
)

// reservedPaths are platform paths that can never be a handle.
var reservedPaths = map[string]struct{}{
	"home":          {},
	"search":        {},
	"notifications": {},
	"messages":      {},
	"i":             {},
	"explore":       {},
	"settings":      {},
}

// Handle returns the lowercased handle asserted by the link's path, or
// "" when none can be parsed or the path is a reserved platform path.
func Handle(link string) string {
	for _, p := range handlePatterns {
		m := p.FindStringSubmatch(link)
		if m == nil {
			continue
		}
		handle := strings.ToLower(m[1])
		if _, reserved := reservedPaths[handle]; !reserved {
			return handle
		}
	}
	return ""
}

// PostID returns the numeric post identifier in the link, or "" when the
// link does not point at a specific post.
func PostID(link string) string {
	m := postIDPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// OwnsPost reports whether link is attributable to claimedHandle and
// points at a specific post. Purely syntactic: no network calls, no
// existence check. Deliberately conservative, preferring false negatives
// over accepting someone else's link.
func OwnsPost(link, claimedHandle string) bool {
	handle := Handle(link)
	if handle == "" {
		return false
	}
	if !strings.Contains(strings.ToLower(link), "/status/") {
		return false
	}
	return handle == strings.ToLower(claimedHandle)
}
