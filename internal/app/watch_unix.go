//go:build !windows

package app

import (
	"fmt"
	"os"
	"syscall"
)

// shutdownSignals end the watch loop gracefully.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// stopDaemon signals the background watcher recorded in the PID file, then
// removes the file.
func stopDaemon() error {
	pid, err := readPID()
	if err != nil {
		return fmt.Errorf("no watch daemon running (could not read PID file: %v)", err)
	}
	if !processExists(pid) {
		os.Remove(pidFilePath())
		return fmt.Errorf("no watch daemon running (PID %d is not active, cleaned up stale PID file)", pid)
	}
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("stopping watch daemon (PID %d): %w", pid, err)
	}
	os.Remove(pidFilePath())
	fmt.Printf("Stopped watch daemon (PID %d)\n", pid)
	return nil
}

// processExists probes a PID with signal 0, which checks existence without
// delivering anything.
func processExists(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
