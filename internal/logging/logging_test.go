package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOGS_FOLDER", dir)

	Init(true)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("verbose should enable debug, got %v", zerolog.GlobalLevel())
	}
	log.Info().Msg("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestNewFileWriter_RejectsFileAsDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := newFileWriter(blocker); err == nil {
		t.Error("expected error when log path is a regular file")
	}
}
