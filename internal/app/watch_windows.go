//go:build windows

package app

import (
	"fmt"
	"os"
)

// shutdownSignals end the watch loop gracefully.
var shutdownSignals = []os.Signal{os.Interrupt}

// stopDaemon terminates the background watcher recorded in the PID file,
// then removes the file. Windows has no SIGTERM; Kill is immediate.
func stopDaemon() error {
	pid, err := readPID()
	if err != nil {
		return fmt.Errorf("no watch daemon running (could not read PID file: %v)", err)
	}
	if !processExists(pid) {
		os.Remove(pidFilePath())
		return fmt.Errorf("no watch daemon running (PID %d is not active, cleaned up stale PID file)", pid)
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding process (PID %d): %w", pid, err)
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("stopping watch daemon (PID %d): %w", pid, err)
	}
	os.Remove(pidFilePath())
	fmt.Printf("Stopped watch daemon (PID %d)\n", pid)
	return nil
}

// processExists reports whether a PID is live. FindProcess always succeeds
// on Windows, so the probe is a nil signal, which errors for dead PIDs.
func processExists(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(os.Signal(nil)) == nil
}
