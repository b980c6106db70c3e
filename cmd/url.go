package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ytkit/internal/media"
	"ytkit/internal/render"
	"ytkit/internal/youtube"
)

var validateCmd = &cobra.Command{
	Use:   "validate <url>...",
	Short: "Check whether URLs point at YouTube",
	Args:  cobra.MinimumNArgs(1),
	RunE:  validateRun,
}

type validateResult struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

func validateRun(cmd *cobra.Command, args []string) error {
	results := make([]validateResult, len(args))
	rows := make([]render.Row, len(args))
	for i, u := range args {
		results[i] = validateResult{URL: u, Valid: youtube.ValidateURL(u)}
		rows[i] = render.Row{Key: u, Value: strconv.FormatBool(results[i].Valid)}
	}
	return printer(cmd).Emit(results, rows...)
}

var idCmd = &cobra.Command{
	Use:   "id <url>...",
	Short: "Extract video identifiers from URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  idRun,
}

type idResult struct {
	URL     string  `json:"url"`
	VideoID *string `json:"video_id"`
}

func idRun(cmd *cobra.Command, args []string) error {
	results := make([]idResult, len(args))
	rows := make([]render.Row, len(args))
	for i, u := range args {
		results[i] = idResult{URL: u}
		rows[i] = render.Row{Key: u, Value: "(none)"}

		if id, ok := youtube.ExtractVideoID(u); ok {
			results[i].VideoID = &id
			rows[i].Value = id
		} else {
			debugf("no video id in %s", u)
		}
	}
	return printer(cmd).Emit(results, rows...)
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List YouTube links in an HTML document (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  scanRun,
}

func scanRun(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening document: %w", err)
		}
		defer f.Close()
		r = f
	}

	links, err := youtube.ScanLinks(r)
	if err != nil {
		return err
	}
	debugf("found %d youtube links", len(links))

	if links == nil {
		links = []media.VideoLink{}
	}

	rows := make([]render.Row, len(links))
	for i, l := range links {
		id := l.VideoID
		if id == "" {
			id = "(none)"
		}
		rows[i] = render.Row{Key: l.Href, Value: id}
	}
	return printer(cmd).Emit(links, rows...)
}
