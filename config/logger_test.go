package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
		on   bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"normal", zapcore.InfoLevel, true},
		{"none", zapcore.InvalidLevel, false},
		{"", zapcore.InvalidLevel, false},
	}
	for _, tt := range tests {
		got, on := levelOf(tt.name)
		if got != tt.want || on != tt.on {
			t.Errorf("levelOf(%q) = %v, %v, want %v, %v", tt.name, got, on, tt.want, tt.on)
		}
	}
}

func TestLoggingPrepare_FileLog(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: filepath.Join(dir, "twc.log"), Mode: "overwrite"},
	}
	defer debug.SetCrashOutput(nil, debug.CrashOptions{})

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("file log was not created: %v", err)
	}
	if !strings.Contains(string(data), "visible message") || strings.Contains(string(data), "hidden message") {
		t.Errorf("file log content:\n%s", data)
	}
	if _, err := os.Stat(conf.PanicLogName()); err != nil {
		t.Errorf("panic log was not created: %v", err)
	}
}

func TestLoggingPrepare_ReportForcesDebug(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "twc.log"), Mode: "append"},
	}
	defer debug.SetCrashOutput(nil, debug.CrashOptions{})

	rpt := &Report{entries: make(map[string]entry)}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("debug message")
	_ = log.Sync()

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("file log was not created: %v", err)
	}
	if !strings.Contains(string(data), "debug message") {
		t.Errorf("report should force debug file log, got:\n%s", data)
	}
	for _, name := range []string{"final.log", "panic.log"} {
		if _, ok := rpt.entries[name]; !ok {
			t.Errorf("report misses %s", name)
		}
	}
}

func TestLoggingPrepare_NoFileLog(t *testing.T) {
	dir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "twc.log")},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("nowhere")
	if _, err := os.Stat(conf.FileLogger.Destination); !os.IsNotExist(err) {
		t.Errorf("file log should not be created, stat error = %v", err)
	}
}
