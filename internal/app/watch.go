package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/watcher"
)

var (
	watchDaemon   bool
	watchInterval string
	watchStop     bool
	watchQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the schedule export and alert on new violations",
	Long: `Run a background monitor that re-validates the schedule export at an
interval. When findings change between passes (new violations, new
warnings, a quality score drop, or fixes), terminal alerts are emitted;
critical alerts also trigger a desktop notification.

Examples:
  campwatch watch                    # run in foreground (ctrl-c to stop)
  campwatch watch --daemon           # run in background, write PID file
  campwatch watch --interval 5m      # check every 5 minutes (default: 10m)
  campwatch watch --stop             # stop the background daemon`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchDaemon, "daemon", false, "Run in background mode (write PID file, log to file)")
	watchCmd.Flags().StringVar(&watchInterval, "interval", "10m", "Check interval as duration string (e.g. 5m, 1h)")
	watchCmd.Flags().BoolVar(&watchStop, "stop", false, "Stop a running background daemon")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	rootCmd.AddCommand(watchCmd)
}

// pidFilePath returns the path to the daemon PID file.
func pidFilePath() string {
	return filepath.Join(config.ConfigDir(), "watch.pid")
}

// logFilePath returns the path to the daemon log file.
func logFilePath() string {
	return filepath.Join(config.ConfigDir(), "watch.log")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchStop {
		return stopDaemon()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interval, err := time.ParseDuration(watchInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", watchInterval, err)
	}
	if interval < 30*time.Second {
		return fmt.Errorf("interval must be at least 30s, got %s", interval)
	}

	run := validationRunFunc(cfg)

	if watchDaemon {
		return runDaemon(run, interval)
	}

	return runForeground(run, interval)
}

// validationRunFunc builds the watcher's validation pass. The bundle is
// reloaded on every call so edits to the export are picked up.
func validationRunFunc(cfg *config.Config) watcher.RunFunc {
	return func() (*analyzer.Report, error) {
		bundle, err := loadBundle(cfg)
		if err != nil {
			return nil, err
		}
		scorer, err := resolveScorer(cfg.Scorer, bundle.History)
		if err != nil {
			return nil, err
		}
		return analyzer.Run(bundle, analyzer.Options{
			Scorer:     scorer,
			Thresholds: pipelineThresholds(cfg),
		}), nil
	}
}

// watchAlertFunc wraps an alert sink: critical alerts raise a desktop
// notification first, then every alert is handed to sink.
func watchAlertFunc(sink func(watcher.Alert)) func(watcher.Alert) {
	return func(a watcher.Alert) {
		if a.Level == "critical" {
			_ = watcher.Notify(a)
		}
		sink(a)
	}
}

// runForeground runs the watcher in the foreground with live terminal output.
func runForeground(run watcher.RunFunc, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if !watchQuiet {
		fmt.Printf("campwatch watching... (checking every %s)\n", interval)
	}

	w := watcher.New(run, interval, watchAlertFunc(func(a watcher.Alert) {
		if !watchQuiet {
			printAlert(a)
		}
	}))

	// Baseline pass runs before the loop; a broken export surfaces here.
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial validation failed: %w", err)
	}
	if !watchQuiet {
		fmt.Printf("[%s] %s baseline: %d errors, %d warnings (score %d)\n",
			time.Now().Format("15:04:05"), checkMark(),
			initial.Errors, initial.Warnings, initial.Score)
	}

	if err := w.Run(ctx); err != context.Canceled {
		return err
	}
	if !watchQuiet {
		fmt.Println("\nStopped.")
	}
	return nil
}

// runDaemon claims the PID file and runs the watcher with alerts going to
// the log file. The actual backgrounding is left to the caller (nohup, &,
// etc.) since Go cannot reliably fork.
func runDaemon(run watcher.RunFunc, interval time.Duration) error {
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	release, err := acquirePIDFile()
	if err != nil {
		return err
	}
	defer release()

	logFile, err := os.OpenFile(logFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	writeLog(logFile, "campwatch daemon started (PID %d, interval %s)", os.Getpid(), interval)

	w := watcher.New(run, interval, watchAlertFunc(func(a watcher.Alert) {
		writeLog(logFile, "[%s] %s: %s", a.Level, a.Title, a.Message)
	}))

	if err := w.Run(ctx); err != context.Canceled {
		return err
	}
	writeLog(logFile, "daemon stopped")
	return nil
}

// acquirePIDFile claims the daemon PID file, refusing to start when another
// daemon is already alive. The returned func releases the file.
func acquirePIDFile() (func(), error) {
	if pid, err := readPID(); err == nil {
		if processExists(pid) {
			return nil, fmt.Errorf("daemon already running (PID %d). Use --stop to stop it", pid)
		}
		// Stale PID file left by a dead process.
		_ = os.Remove(pidFilePath())
	}
	if err := os.WriteFile(pidFilePath(), []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("writing PID file: %w", err)
	}
	return func() { _ = os.Remove(pidFilePath()) }, nil
}

// readPID reads the daemon PID from the PID file.
func readPID() (int, error) {
	data, err := os.ReadFile(pidFilePath())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(data))
}

// writeLog writes a timestamped line to the log file.
func writeLog(f *os.File, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
}

// printAlert formats and prints an alert to the terminal.
func printAlert(a watcher.Alert) {
	timestamp := a.Time.Format("15:04:05")
	fmt.Printf("[%s] %s %s\n", timestamp, alertIcon(a.Level), a.Title)
	if a.Message != "" {
		fmt.Printf("         %s\n", a.Message)
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case "critical":
		return "\xf0\x9f\x94\xb4" // red circle
	case "warning":
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning sign
	case "info":
		return "\xe2\x9c\x93" // check mark
	default:
		return " "
	}
}

// checkMark returns a terminal check mark indicator.
func checkMark() string {
	return "\xe2\x9c\x93"
}
