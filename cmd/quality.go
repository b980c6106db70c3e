package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"ytkit/internal/media"
	"ytkit/internal/quality"
	"ytkit/internal/render"
)

var qualityCmd = &cobra.Command{
	Use:   "quality [descriptor]...",
	Short: "Normalize quality descriptors such as 720 or 1920x1080",
	Long: `Parse each descriptor into a height, look up its label, check it against
the supported resolutions and print the matching yt-dlp format selector.
Without arguments the configured default quality is used.`,
	RunE: qualityRun,
}

func qualityRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{cfg.Quality}
		debugf("using configured quality %s", cfg.Quality)
	}

	infos := make([]media.QualityInfo, len(args))
	var rows []render.Row
	for i, q := range args {
		infos[i] = describeQuality(q)
		info := infos[i]

		height, label := "(unparseable)", "(none)"
		if info.Parsed {
			height = strconv.FormatUint(uint64(info.Height), 10)
			label = info.Label
		}

		rows = append(rows,
			render.Row{Key: q + " height", Value: height},
			render.Row{Key: q + " label", Value: label},
			render.Row{Key: q + " supported", Value: strconv.FormatBool(info.Supported)},
			render.Row{Key: q + " selector", Value: info.Selector},
		)
	}
	return printer(cmd).Emit(infos, rows...)
}

func describeQuality(q string) media.QualityInfo {
	info := media.QualityInfo{
		Input:     q,
		Supported: quality.IsSupported(q),
		Selector:  quality.Selector(q),
	}
	if h, ok := quality.Parse(q); ok {
		info.Height = h
		info.Parsed = true
		info.Label = quality.Label(h)
	}
	return info
}
