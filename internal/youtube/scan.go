package youtube

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ytkit/internal/media"
)

// linkAttrs maps the elements worth scanning to the attribute holding their target.
var linkAttrs = []struct {
	selector string
	element  string
	attr     string
}{
	{"a[href]", "a", "href"},
	{"iframe[src]", "iframe", "src"},
	{"link[href]", "link", "href"},
}

// ScanLinks reads an HTML document and returns every YouTube link in it,
// in document order, each href reported once.
func ScanLinks(r io.Reader) ([]media.VideoLink, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return parseLinks(doc), nil
}

// parseLinks walks the DOM instead of pattern-matching raw HTML so that
// hrefs inside comments or scripts are not picked up.
func parseLinks(doc *goquery.Document) []media.VideoLink {
	selectors := make([]string, len(linkAttrs))
	for i, la := range linkAttrs {
		selectors[i] = la.selector
	}

	var links []media.VideoLink
	seen := make(map[string]bool)

	doc.Find(strings.Join(selectors, ", ")).Each(func(_ int, s *goquery.Selection) {
		element := goquery.NodeName(s)

		var href string
		for _, la := range linkAttrs {
			if la.element == element {
				href = strings.TrimSpace(s.AttrOr(la.attr, ""))
				break
			}
		}

		if href == "" || seen[href] || !ValidateURL(href) {
			return
		}
		seen[href] = true

		id, _ := ExtractVideoID(href)
		links = append(links, media.VideoLink{
			Href:    href,
			Source:  element,
			VideoID: id,
		})
	})

	return links
}
