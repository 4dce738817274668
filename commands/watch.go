package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/analyzer"
	"github.com/logsleuth/logsleuth/internal/util"
	"github.com/logsleuth/logsleuth/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <log-file> [flags]",
	Short: "Re-run the analysis whenever the log file changes",
	Long: `Watches the log file and re-runs the single-pass analysis each time it is
written to. Every run reads the whole file; this is not streaming ingestion.

Press Ctrl-C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	a := analyzer.New(cfg)

	// Initial run; a missing file is fatal here just like in one-shot mode.
	if err := a.Run(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.LogFile, err)
	}
	defer fw.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", cfg.LogFile)

	for {
		select {
		case <-fw.Events():
			fmt.Println()
			if err := a.Run(); err != nil {
				// The file may be mid-rotation; keep watching.
				util.LogWarnf("Analysis failed, still watching: %v", err)
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		case <-sigCh:
			return nil
		}
	}
}
