package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToCustomPath(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	log := WithComponent("test")
	log.Info("hello from test", "key", "value")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello from test") {
		t.Errorf("Log file missing message: %s", content)
	}
	if !strings.Contains(content, "component=test") {
		t.Errorf("Log file missing component attribute: %s", content)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	Reset()
	defer Reset()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := Init(first); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("Second Init should not error: %v", err)
	}

	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("Second Init should not have created a new log file")
	}
}

func TestSetDebug_TogglesLevel(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	log := WithComponent("test")
	log.Debug("suppressed message")

	SetDebug(true)
	log.Debug("visible message")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "suppressed message") {
		t.Error("Debug message should be suppressed at info level")
	}
	if !strings.Contains(content, "visible message") {
		t.Error("Debug message should appear after SetDebug(true)")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "test.log"))
	if err == nil {
		t.Error("Init should fail for an unwritable path")
	}
}
