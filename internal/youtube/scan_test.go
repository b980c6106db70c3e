package youtube

import (
	"strings"
	"testing"
)

const scanFixture = `<!DOCTYPE html>
<html>
<head>
  <link rel="alternate" href="https://youtu.be/headLink01">
  <script>var u = "https://youtu.be/scriptLink1";</script>
</head>
<body>
  <!-- <a href="https://youtu.be/commented1">hidden</a> -->
  <a href="https://youtu.be/dQw4w9WgXcQ">short</a>
  <a href="https://vimeo.com/123456">other</a>
  <a href="https://www.youtube.com/watch?v=dQw4w9WgXcQ">watch</a>
  <a href="  https://youtu.be/dQw4w9WgXcQ  ">duplicate</a>
  <a href="">empty</a>
  <iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe>
</body>
</html>`

func TestScanLinks(t *testing.T) {
	links, err := ScanLinks(strings.NewReader(scanFixture))
	if err != nil {
		t.Fatalf("ScanLinks() error: %v", err)
	}

	want := []struct {
		href    string
		source  string
		videoID string
	}{
		{"https://youtu.be/headLink01", "link", "headLink01"},
		{"https://youtu.be/dQw4w9WgXcQ", "a", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "a", ""},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "iframe", "d/dQw4w9WgXcQ"},
	}

	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d: %+v", len(want), len(links), links)
	}

	for i, w := range want {
		got := links[i]
		if got.Href != w.href {
			t.Errorf("links[%d].Href = %q, want %q", i, got.Href, w.href)
		}
		if got.Source != w.source {
			t.Errorf("links[%d].Source = %q, want %q", i, got.Source, w.source)
		}
		if got.VideoID != w.videoID {
			t.Errorf("links[%d].VideoID = %q, want %q", i, got.VideoID, w.videoID)
		}
	}
}

func TestScanLinksNoMatches(t *testing.T) {
	links, err := ScanLinks(strings.NewReader(`<p>nothing <a href="/local">here</a></p>`))
	if err != nil {
		t.Fatalf("ScanLinks() error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %+v", links)
	}
}
