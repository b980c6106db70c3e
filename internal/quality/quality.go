// Package quality normalizes video quality descriptors.
// A descriptor is either a bare height ("1080") or a WxH pair ("1920x1080").
package quality

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported lists the resolutions offered for download, lowest first.
var Supported = []string{
	"256x144",
	"426x240",
	"640x360",
	"854x480",
	"1280x720",
	"1920x1080",
	"2560x1440",
	"3840x2160",
}

var labels = map[uint32]string{
	144:  "144p",
	240:  "240p",
	360:  "360p",
	480:  "480p SD",
	720:  "720p HD",
	1080: "1080p Full HD",
	1440: "1440p QHD",
	2160: "2160p 4K UHD",
	4320: "4320p 8K UHD",
}

// Parse returns the height encoded in s. For a WxH pair the part after
// the first 'x' is tried first; if that fails the whole string is parsed.
func Parse(s string) (uint32, bool) {
	if _, h, found := strings.Cut(s, "x"); found {
		if n, err := strconv.ParseUint(h, 10, 32); err == nil {
			return uint32(n), true
		}
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Label returns the display name for a height, e.g. "720p HD".
func Label(height uint32) string {
	if l, ok := labels[height]; ok {
		return l
	}
	return fmt.Sprintf("%dp", height)
}

// IsSupported reports whether the width part of q (everything before the
// first 'x') is a prefix of one of the Supported resolutions.
func IsSupported(q string) bool {
	width, _, _ := strings.Cut(q, "x")
	for _, s := range Supported {
		if strings.HasPrefix(s, width) {
			return true
		}
	}
	return false
}

const (
	defaultSelector  = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	fallbackSelector = "bestvideo[ext=mp4]+bestaudio/best[ext=mp4]/best"
)

// Selector builds the yt-dlp format expression for a requested quality.
// WxH descriptors cap the height, anything else is treated as a format id.
func Selector(q string) string {
	if q == "" || q == "best" {
		return defaultSelector
	}

	if !strings.Contains(q, "x") {
		return fmt.Sprintf("format_id/%s/best", q)
	}

	parts := strings.Split(q, "x")
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fallbackSelector
	}
	return fmt.Sprintf("bestvideo[height<=%d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%d][ext=mp4]/best", height, height)
}
