package watcher

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Notify raises a desktop notification for an alert. On macOS it goes
// through osascript, on Linux through notify-send; any other platform, a
// missing notifier, or a failed invocation falls back to stderr.
func Notify(alert Alert) error {
	name, args := notifierCommand(runtime.GOOS, alert)
	if name == "" {
		return notifyFallback(alert)
	}
	if _, err := exec.LookPath(name); err != nil {
		return notifyFallback(alert)
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return notifyFallback(alert)
	}
	return nil
}

// notifierCommand picks the notifier binary and arguments for a platform.
// An empty name means the platform has none.
func notifierCommand(goos string, alert Alert) (string, []string) {
	switch goos {
	case "darwin":
		script := fmt.Sprintf(
			`display notification %q with title "campwatch" subtitle %q`,
			alert.Message, alert.Title,
		)
		return "osascript", []string{"-e", script}
	case "linux":
		return "notify-send", []string{"campwatch: " + alert.Title, alert.Message}
	default:
		return "", nil
	}
}

// notifyFallback prints the alert to stderr when no desktop notifier is
// available.
func notifyFallback(alert Alert) error {
	_, err := fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}
