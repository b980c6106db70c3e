package ident

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestDownloadID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got := downloadID(now); got != "dl_1700000000123" {
		t.Errorf("downloadID = %q, want dl_1700000000123", got)
	}
}

func TestGenerateDownloadID(t *testing.T) {
	before := time.Now().UnixMilli()
	id := GenerateDownloadID()
	after := time.Now().UnixMilli()

	if !strings.HasPrefix(id, "dl_") {
		t.Fatalf("GenerateDownloadID = %q, want dl_ prefix", id)
	}
	ms, err := strconv.ParseInt(strings.TrimPrefix(id, "dl_"), 10, 64)
	if err != nil {
		t.Fatalf("timestamp part of %q is not numeric: %v", id, err)
	}
	if ms < before || ms > after {
		t.Errorf("timestamp %d outside [%d, %d]", ms, before, after)
	}
}

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Alice", "Hello, Alice! Welcome to YouTube Downloader WASM!"},
		{"", "Hello, ! Welcome to YouTube Downloader WASM!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Greet(tt.name); got != tt.expected {
				t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}
