package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/harrison/kubesum/internal/models"
)

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logFn      func(cl *ConsoleLogger)
		wantOutput bool
	}{
		{name: "debug suppressed at info", level: "info", logFn: func(cl *ConsoleLogger) { cl.LogDebug("hidden") }, wantOutput: false},
		{name: "info shown at info", level: "info", logFn: func(cl *ConsoleLogger) { cl.LogInfo("shown") }, wantOutput: true},
		{name: "warn shown at info", level: "info", logFn: func(cl *ConsoleLogger) { cl.LogWarn("shown") }, wantOutput: true},
		{name: "debug shown at debug", level: "debug", logFn: func(cl *ConsoleLogger) { cl.LogDebug("shown") }, wantOutput: true},
		{name: "info suppressed at error", level: "error", logFn: func(cl *ConsoleLogger) { cl.LogInfo("hidden") }, wantOutput: false},
		{name: "trace shown at trace", level: "trace", logFn: func(cl *ConsoleLogger) { cl.LogTrace("shown") }, wantOutput: true},
		{name: "invalid level defaults to info", level: "bogus", logFn: func(cl *ConsoleLogger) { cl.LogDebug("hidden") }, wantOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.level)
			tt.logFn(cl)

			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("output produced = %v, want %v (buffer: %q)", got, tt.wantOutput, buf.String())
			}
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("scan complete")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("output %q missing level tag", out)
	}
	if !strings.Contains(out, "scan complete") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("output %q missing timestamp prefix", out)
	}
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")

	// Must not panic
	cl.LogInfo("nowhere")
	cl.LogSkippedFile("x.yaml", errors.New("denied"))
}

func TestLogScanStart(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogScanStart("/tmp/configs", 3, "abc-123")

	out := buf.String()
	if !strings.Contains(out, "/tmp/configs") || !strings.Contains(out, "3 file(s)") || !strings.Contains(out, "abc-123") {
		t.Errorf("unexpected scan start output: %q", out)
	}
}

func TestLogFileTotalsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "debug")

	cl.LogFileTotals("deploy.yaml", models.ResourceTotals{
		MemoryRequested: 64,
		CPURequested:    0.25,
	})

	out := buf.String()
	if !strings.Contains(out, "deploy.yaml") || !strings.Contains(out, "request=64") || !strings.Contains(out, "request=0.250") {
		t.Errorf("unexpected file totals output: %q", out)
	}
}

func TestConsoleLoggerConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cl.LogInfo("concurrent message")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "concurrent message"); got != 10 {
		t.Errorf("logged %d messages, want 10", got)
	}
}
