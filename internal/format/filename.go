package format

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength caps SafeTitle output, in runes.
	MaxTitleLength = 50

	uploadPrefix    = "youtube/"
	uploadTimestamp = "20060102_150405"
	uploadIDLength  = 8
)

// reservedReplacer maps characters that are invalid in file names on
// common filesystems to '_'.
var reservedReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFilename replaces reserved characters with '_' and trims
// surrounding whitespace. Applying it twice gives the same result as once.
func SanitizeFilename(name string) string {
	return strings.TrimSpace(reservedReplacer.Replace(name))
}

// SafeTitle keeps letters, digits, spaces, '-' and '_', trims the
// result and truncates it to MaxTitleLength runes.
func SafeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	safe := []rune(strings.TrimSpace(b.String()))
	if len(safe) > MaxTitleLength {
		safe = safe[:MaxTitleLength]
	}
	return string(safe)
}

// DownloadName returns the attachment filename for a title.
func DownloadName(title string) string {
	return SafeTitle(title) + ".mp4"
}

// UploadKey returns a unique object key for an uploaded copy of a video:
// youtube/<safe title>_<YYYYmmdd_HHMMSS>_<8 random hex chars>.mp4
func UploadKey(title string, at time.Time) string {
	return uploadKey(title, at, uuid.NewString())
}

func uploadKey(title string, at time.Time, id string) string {
	if len(id) > uploadIDLength {
		id = id[:uploadIDLength]
	}
	return uploadPrefix + SafeTitle(title) + "_" + at.Format(uploadTimestamp) + "_" + id + ".mp4"
}
