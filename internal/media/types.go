// Package media defines shared result types for the ytkit application.
package media

// VideoLink is a YouTube link found in a document.
type VideoLink struct {
	Href    string `json:"href"`               // Link target as written in the document
	Source  string `json:"source"`             // Element it came from: "a", "iframe" or "link"
	VideoID string `json:"video_id,omitempty"` // Extracted identifier, empty when none
}

// QualityInfo is the normalized view of a quality descriptor.
type QualityInfo struct {
	Input     string `json:"input"`            // Descriptor as given, e.g. "1920x1080"
	Height    uint32 `json:"height,omitempty"` // Parsed height, 0 when unparseable
	Parsed    bool   `json:"parsed"`
	Label     string `json:"label,omitempty"` // Human-readable tier, e.g. "1080p Full HD"
	Supported bool   `json:"supported"`
	Selector  string `json:"selector"` // yt-dlp format expression for this quality
}

// TitleInfo holds the names derived from a video title.
type TitleInfo struct {
	Title     string `json:"title"`
	Sanitized string `json:"sanitized"`  // Reserved characters replaced with '_'
	Safe      string `json:"safe"`       // Alphanumerics, space, '-' and '_' only
	Download  string `json:"download"`   // Attachment filename
	UploadKey string `json:"upload_key"` // Object key for uploaded copies
}
