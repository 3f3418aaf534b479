package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdreader/internal/doctree"
	"github.com/dgallion1/mdreader/internal/pipeline"
)

func newRenderCmd() *cobra.Command {
	var (
		output string
		watch  bool
		noNav  bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a markdown file to an HTML page with an outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(slog.LevelWarn)
			session := newSession(cfg, log)

			doc, err := session.Open(args[0])
			if err != nil {
				return err
			}

			write := func(doc *pipeline.Document) error {
				if output == "" || output == "-" {
					return writePage(cmd.OutOrStdout(), doc, !noNav)
				}
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				return writePage(f, doc, !noNav)
			}
			if err := write(doc); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %s\n", doc.Path)
			return pipeline.Watch(ctx, session, pipeline.DefaultDebounce, func(d *pipeline.Document) {
				if err := write(d); err != nil {
					log.Error("write failed", "error", err)
					return
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "re-rendered %s (%d headings)\n", d.Path, len(d.Headings))
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page to this file instead of stdout")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the file changes")
	cmd.Flags().BoolVar(&noNav, "no-nav", false, "Do not append the outline navigation")
	return cmd
}

// writePage writes the document page, followed by its outline when nav is set.
func writePage(w io.Writer, doc *pipeline.Document, nav bool) error {
	var sb strings.Builder
	sb.WriteString(doc.HTML)
	if nav {
		sb.WriteString("\n")
		if err := doctree.RenderNav(doc.Tree, &sb); err != nil {
			return err
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
