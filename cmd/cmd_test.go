package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	flagJSON, flagDebug, flagNoColor = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"validate", []string{"validate", "https://YOUTUBE.com/x", "https://vimeo.com/x"},
			"https://YOUTUBE.com/x: true\nhttps://vimeo.com/x: false\n"},
		{"id", []string{"id", "https://youtu.be/dQw4w9WgXcQ", "https://vimeo.com/x"},
			"https://youtu.be/dQw4w9WgXcQ: dQw4w9WgXcQ\nhttps://vimeo.com/x: (none)\n"},
		{"size", []string{"size", "500", "1024", "1073741824"},
			"500: 500 bytes\n1024: 1.00 KB\n1073741824: 1.00 GB\n"},
		{"duration", []string{"duration", "61", "3661"},
			"61: 01:01\n3661: 01:01:01\n"},
		{"sanitize", []string{"sanitize", "a/b:c*d"}, "a_b_c_d\n"},
		{"greet", []string{"greet", "Alice"}, "Hello, Alice! Welcome to YouTube Downloader WASM!\n"},
		{"greet default", []string{"greet"}, "Hello, friend! Welcome to YouTube Downloader WASM!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error: %v", tt.args, err)
			}
			if got != tt.expected {
				t.Errorf("Execute(%v) output = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestSizeRejectsNegative(t *testing.T) {
	if _, err := run(t, "", "size", "-5"); err == nil {
		t.Error("size -5 should fail")
	}
}

func TestQualityJSON(t *testing.T) {
	out, err := run(t, "", "--json", "quality", "1280x720", "abc")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var infos []struct {
		Input     string `json:"input"`
		Height    uint32 `json:"height"`
		Parsed    bool   `json:"parsed"`
		Label     string `json:"label"`
		Supported bool   `json:"supported"`
	}
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 results, got %d", len(infos))
	}
	if infos[0].Height != 720 || infos[0].Label != "720p HD" || !infos[0].Supported {
		t.Errorf("1280x720 = %+v", infos[0])
	}
	if infos[1].Parsed || infos[1].Supported {
		t.Errorf("abc = %+v", infos[1])
	}
}

func TestQualityDefaultsToConfig(t *testing.T) {
	out, err := run(t, "", "quality")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(out, "1080 label: 1080p Full HD") {
		t.Errorf("output %q missing configured quality", out)
	}
}

func TestScanStdin(t *testing.T) {
	html := `<a href="https://youtu.be/dQw4w9WgXcQ">x</a><a href="https://example.com">y</a>`
	out, err := run(t, html, "scan")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "https://youtu.be/dQw4w9WgXcQ: dQw4w9WgXcQ\n" {
		t.Errorf("scan output = %q", out)
	}
}

func TestDlidJSON(t *testing.T) {
	out, err := run(t, "", "-j", "dlid")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !strings.HasPrefix(got["id"], "dl_") {
		t.Errorf("id = %q, want dl_ prefix", got["id"])
	}
}
