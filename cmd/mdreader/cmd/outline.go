package cmd

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdreader/internal/doctree"
)

func newOutlineCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print the heading outline of a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			doc, err := newSession(cfg, newLogger(slog.LevelWarn)).Open(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc.Tree.Outline())
			}
			return doctree.PrintTree(doc.Tree, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the outline as JSON")
	return cmd
}
