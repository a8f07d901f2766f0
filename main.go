package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sourdough-calculator/config"
	"sourdough-calculator/repository"
	"sourdough-calculator/service"
)

var (
	cfg    config.Config
	logger *zap.Logger

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sourdough",
	Short: "Sourdough calculator based on baker's percentages",
	Long: `Turns a target dough weight, hydration and levain percentage into
grams of flour, water, salt and levain, and carries a baking guide and a
troubleshooting reference.

Run without arguments to open the interactive calculator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		// The terminal form owns the screen; log lines would tear it.
		switch cmd.Name() {
		case "sourdough", "tui":
			logger = zap.NewNop()
			return nil
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTUI,
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func newContentService() (*service.ContentService, error) {
	repo, err := repository.NewContentRepositoryYAML(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return service.NewContentService(repo, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, calcCmd, tuiCmd, guideCmd, troubleshootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
