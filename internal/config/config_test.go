package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("WEEK_START_DAY", "sunday")
	t.Setenv("TIMELINE_PAD_DAYS", "3")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("ENABLE_MERMAID_CHARTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WeekStart != time.Sunday {
		t.Errorf("WeekStart = %v", cfg.WeekStart)
	}
	if cfg.PadDays != 3 {
		t.Errorf("PadDays = %d", cfg.PadDays)
	}
	if cfg.Location.String() != "America/New_York" {
		t.Errorf("Location = %v", cfg.Location)
	}
	if !cfg.EnableMermaidCharts {
		t.Error("expected mermaid charts enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("WEEK_START_DAY", "friday")
	t.Setenv("TIMELINE_PAD_DAYS", "-2")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	t.Setenv("ENABLE_MERMAID_CHARTS", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WeekStart != time.Monday || cfg.PadDays != 0 || cfg.Location != time.UTC || cfg.EnableMermaidCharts {
		t.Errorf("unexpected fallbacks: %+v", cfg)
	}
}

func TestLoad_DataPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataPath != dir {
		t.Errorf("DataPath = %q, want %q", cfg.DataPath, dir)
	}
}

func TestResolvePath(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "srv", "schedules")
	abs := filepath.Join(string(filepath.Separator), "tmp", "duplex.yaml")
	cfg := &AppConfig{DataPath: base}

	tests := []struct {
		in, want string
	}{
		{"duplex.yaml", filepath.Join(base, "duplex.yaml")},
		{filepath.Join("sites", "duplex.yaml"), filepath.Join(base, "sites", "duplex.yaml")},
		{abs, abs},
	}
	for _, tt := range tests {
		if got := cfg.ResolvePath(tt.in); got != tt.want {
			t.Errorf("ResolvePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := (&AppConfig{}).ResolvePath("duplex.yaml"); got != "duplex.yaml" {
		t.Errorf("without DataPath got %q", got)
	}
}

func TestToday_UsesConfiguredLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	cfg := &AppConfig{Location: ny}
	// 03:00 UTC on Jan 10 is still Jan 9 in New York.
	got := cfg.Today(time.Date(2025, 1, 10, 3, 0, 0, 0, time.UTC))
	want := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
}

func TestGodotenvQuoting(t *testing.T) {
	content := `WEEK_START_DAY='sunday "weeks"'`
	tmpfile, err := os.CreateTemp("", ".env.test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(tmpfile.Name())
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `sunday "weeks"`
	if env["WEEK_START_DAY"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["WEEK_START_DAY"])
	}
}
