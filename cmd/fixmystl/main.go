package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixmystl/fixmystl/internal/config"
	"github.com/fixmystl/fixmystl/internal/logger"
	"github.com/fixmystl/fixmystl/version"
)

var (
	configFile string
	debug      bool
	logFile    string

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fixmystl",
	Short: "Inspect, repair and estimate STL files before printing",
	Long: `fixmystl reads binary and ASCII STL files (or renders OpenSCAD sources)
and prepares them for 3D printing. It can rescale models exported in the wrong
unit, rotate them in quarter turns, center them or drop them onto the bed, and
estimate filament, cost, print time and overhang risk.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./fixmystl.yaml or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile, func(c *config.Config) {
		if debug {
			c.Logging.Level = "debug"
		}
		if logFile != "" {
			c.Logging.LogFile = logFile
		}
	})
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("configuration loaded")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
