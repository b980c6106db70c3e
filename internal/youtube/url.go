// Package youtube inspects YouTube URLs without parsing them.
// Matching is plain substring search, so any text that mentions a
// YouTube host is accepted.
package youtube

import "strings"

const (
	minIDLength = 8
	maxIDLength = 20
)

// idPattern pairs a URL fragment with the byte offset, measured from the
// start of the match, at which the identifier begins.
type idPattern struct {
	fragment string
	offset   int
}

// Offsets are kept as existing callers depend on them, even where they
// fall short of the fragment length.
var idPatterns = []idPattern{
	{"youtube.com/watch?v=", 16},
	{"youtu.be/", 9},
	{"youtube.com/embed/", 16},
	{"youtube.com/shorts/", 16},
	{"youtube.com/v/", 13},
}

// ValidateURL reports whether url mentions youtube.com or youtu.be,
// ignoring case.
func ValidateURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be")
}

// ExtractVideoID returns the video identifier embedded in url.
// Patterns are tried in order; a candidate is accepted only if it is
// between 8 and 20 bytes long, otherwise the next pattern is tried.
func ExtractVideoID(url string) (string, bool) {
	for _, p := range idPatterns {
		pos := strings.Index(url, p.fragment)
		if pos < 0 {
			continue
		}

		rest := url[pos+p.offset:]
		if end := strings.IndexAny(rest, "&?#"); end >= 0 {
			rest = rest[:end]
		}

		if len(rest) >= minIDLength && len(rest) <= maxIDLength {
			return rest, true
		}
	}
	return "", false
}
