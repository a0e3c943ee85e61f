package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fixmystl/fixmystl/internal/logger"
	"github.com/fixmystl/fixmystl/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Print model information again whenever the file changes",
	Long: `Watch a model and re-run info each time it is saved.

For OpenSCAD sources every used or included file is watched too, and the
model is re-rendered when any of them changes. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "wait this long after the last change before reloading")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, input, err := openSession(ctx, path)
	if err != nil {
		return err
	}
	if err := printInfo(out, input.Path, session); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, logger.Named("watcher"))
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	var reload func(string)
	reload = func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		logger.Info("file changed, reloading", zap.String("path", changed))
		session, input, err := openSession(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		fmt.Fprintf(out, "\n--- reloaded after change to %s ---\n\n", changed)
		if err := printInfo(out, input.Path, session); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// The dependency set of a .scad file may have changed.
		if err := fw.RemoveAll(); err != nil {
			logger.Warn("failed to reset watches", zap.Error(err))
		}
		if err := fw.Watch(input.Files, reload); err != nil {
			logger.Warn("failed to watch dependencies", zap.Error(err))
		}
	}

	if err := fw.Watch(input.Files, reload); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nWatching %d file(s), press Ctrl+C to stop\n", len(input.Files))

	fw.Run(ctx)
	return nil
}
