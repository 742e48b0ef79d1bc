package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/buildinfo"
	"github.com/cleared-dev/spendview/internal/config"
	"github.com/cleared-dev/spendview/internal/importer"
	"github.com/cleared-dev/spendview/internal/log"
)

// app carries state resolved once before any subcommand runs.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	registry *importer.Registry
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{registry: importer.DefaultRegistry()}
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "spendview",
		Short:   "Summarize and chart personal spending from a transactions CSV",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+" when present)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newSampleCommand(a))
	rootCmd.AddCommand(newExportCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.logger = log.New(log.Config{
		Level:     level,
		Format:    cfg.Log.Format,
		Component: cmd.Name(),
		Writer:    cmd.ErrOrStderr(),
	})
	log.SetDefault(a.logger)
	return nil
}
