package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dgallion1/mdreader/internal/config"
	"github.com/dgallion1/mdreader/internal/metrics"
	"github.com/dgallion1/mdreader/internal/parser"
	"github.com/dgallion1/mdreader/internal/pipeline"
)

var flagDebug bool

// Execute runs the root command.
func Execute(version string) error {
	root := NewRootCmd()
	root.Version = version
	return root.Execute()
}

// ExitCode maps an error returned by Execute onto a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case pipeline.IsUserError(err):
		return 2
	default:
		return 1
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mdreader",
		Short:         "Read markdown files with a navigable outline",
		Long:          `mdreader renders markdown to HTML with per-heading anchors and builds an outline of the document's headings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debugging output to stderr")

	rootCmd.AddCommand(newRenderCmd(), newOutlineCmd(), newServeCmd())
	return rootCmd
}

func newLogger(level slog.Level) *slog.Logger {
	if flagDebug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads .env and the environment. Validation is left to the
// commands that need a DocRoot.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config.Config{}, err
	}
	return config.Load()
}

func newSession(cfg config.Config, log *slog.Logger) *pipeline.Session {
	renderer := parser.NewRenderer(parser.RenderOptions{
		Emoji:     cfg.EnableEmoji,
		HardWraps: cfg.HardWraps,
	})
	loader := pipeline.NewLoader(renderer, cfg.Stylesheet, metrics.NewRecorder(nil), log)
	return pipeline.NewSession(loader, log)
}
