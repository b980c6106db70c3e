// Package ident generates download identifiers and greetings.
package ident

import (
	"fmt"
	"time"
)

// GenerateDownloadID returns "dl_" followed by the current Unix time in
// milliseconds. Calls within the same millisecond return the same value.
func GenerateDownloadID() string {
	return downloadID(time.Now())
}

func downloadID(now time.Time) string {
	return fmt.Sprintf("dl_%d", now.UnixMilli())
}

// Greet returns the welcome message for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to YouTube Downloader WASM!", name)
}
