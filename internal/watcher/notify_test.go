package watcher

import (
	"strings"
	"testing"
	"time"
)

func TestNotifierCommand(t *testing.T) {
	alert := Alert{
		Level:   "critical",
		Title:   "New violations: Capacity",
		Message: "Errors went from 0 to 2",
	}

	name, args := notifierCommand("darwin", alert)
	if name != "osascript" {
		t.Errorf("darwin notifier = %q, want osascript", name)
	}
	if len(args) != 2 || args[0] != "-e" {
		t.Fatalf("darwin args = %v, want [-e <script>]", args)
	}
	if !strings.Contains(args[1], alert.Title) || !strings.Contains(args[1], alert.Message) {
		t.Errorf("darwin script %q missing title or message", args[1])
	}

	name, args = notifierCommand("linux", alert)
	if name != "notify-send" {
		t.Errorf("linux notifier = %q, want notify-send", name)
	}
	if len(args) != 2 || args[0] != "campwatch: "+alert.Title {
		t.Errorf("linux args = %v, want summary prefixed with campwatch:", args)
	}

	for _, goos := range []string{"windows", "js", "plan9"} {
		if name, _ := notifierCommand(goos, alert); name != "" {
			t.Errorf("notifierCommand(%q) = %q, want empty (fallback)", goos, name)
		}
	}
}

// Notify shells out to whatever notifier the host has, so the only portable
// assertion is that it returns without panicking for any alert shape.
func TestNotify_AnyAlert(t *testing.T) {
	alerts := []Alert{
		{Level: "info", Title: "Violations resolved", Message: "Errors went from 2 to 0", Time: time.Now()},
		{Level: "warning", Title: "Quality score dropped", Message: "Score went from 92 to 80", Time: time.Now()},
		{},
	}
	for _, alert := range alerts {
		_ = Notify(alert)
	}
}

func TestNotifyFallback(t *testing.T) {
	err := notifyFallback(Alert{
		Level:   "info",
		Title:   "Schedule updated",
		Message: "3 days changed",
		Time:    time.Now(),
	})
	if err != nil {
		t.Errorf("notifyFallback: %v", err)
	}
}
