package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"ytkit/internal/ident"
	"ytkit/internal/render"
)

var dlidCmd = &cobra.Command{
	Use:   "dlid",
	Short: "Generate a download identifier",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ident.GenerateDownloadID()
		return printer(cmd).Emit(map[string]string{"id": id}, render.Row{Value: id})
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Print the welcome message",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cfg.Name
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		msg := ident.Greet(name)
		return printer(cmd).Emit(map[string]string{"message": msg}, render.Row{Value: msg})
	},
}
