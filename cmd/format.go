package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ytkit/internal/format"
	"ytkit/internal/media"
	"ytkit/internal/render"
)

var sizeCmd = &cobra.Command{
	Use:   "size <bytes>...",
	Short: "Format byte counts as bytes, KB, MB or GB",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatCounts(cmd, args, "bytes", format.FileSize)
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration <seconds>...",
	Short: "Format second counts as MM:SS or HH:MM:SS",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatCounts(cmd, args, "seconds", format.Duration)
	},
}

type countResult struct {
	Input     uint64 `json:"input"`
	Formatted string `json:"formatted"`
}

// formatCounts parses every argument as an unsigned integer and renders it with fn.
func formatCounts(cmd *cobra.Command, args []string, unit string, fn func(uint64) string) error {
	results := make([]countResult, len(args))
	rows := make([]render.Row, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be a non-negative integer", unit, a)
		}
		results[i] = countResult{Input: n, Formatted: fn(n)}
		rows[i] = render.Row{Key: a, Value: results[i].Formatted}
	}
	return printer(cmd).Emit(results, rows...)
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <name>",
	Short: "Replace characters that are invalid in file names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		out := format.SanitizeFilename(name)
		return printer(cmd).Emit(map[string]string{"input": name, "sanitized": out}, render.Row{Value: out})
	},
}

var titleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: "Derive file names and an upload key from a video title",
	Args:  cobra.MinimumNArgs(1),
	RunE:  titleRun,
}

func titleRun(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	info := media.TitleInfo{
		Title:     title,
		Sanitized: format.SanitizeFilename(title),
		Safe:      format.SafeTitle(title),
		Download:  format.DownloadName(title),
		UploadKey: format.UploadKey(title, time.Now()),
	}
	if info.Safe == "" {
		logger.Warn("title has no safe characters left", "title", title)
	}

	return printer(cmd).Emit(info,
		render.Row{Key: "sanitized", Value: info.Sanitized},
		render.Row{Key: "safe", Value: info.Safe},
		render.Row{Key: "download", Value: info.Download},
		render.Row{Key: "upload key", Value: info.UploadKey},
	)
}
