package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")

	cmd := &cobra.Command{
		Use:           "examkit",
		Short:         "Render assessments into PDF, DOCX and HTML, with shuffled versions and answer keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newFormatsCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func newLogger() *slog.Logger {
	th := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(th)
	slog.SetDefault(log)
	return log
}
