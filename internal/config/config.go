package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sitegantt/internal/timeline"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath            string
	WeekStart           time.Weekday
	PadDays             int
	Location            *time.Location
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	loc := time.UTC
	if tz := getEnv("TIMEZONE", ""); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Warn().Err(err).Str("timezone", tz).Msg("Unknown timezone, falling back to UTC")
		} else {
			loc = l
		}
	}

	padDays, err := strconv.Atoi(getEnv("TIMELINE_PAD_DAYS", "0"))
	if err != nil || padDays < 0 {
		log.Warn().Str("value", os.Getenv("TIMELINE_PAD_DAYS")).Msg("Invalid TIMELINE_PAD_DAYS, using 0")
		padDays = 0
	}

	cfg := &AppConfig{
		DataPath:            dataPath,
		WeekStart:           timeline.ParseWeekStart(getEnv("WEEK_START_DAY", "monday")),
		PadDays:             padDays,
		Location:            loc,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	return cfg, nil
}

// Today returns the civil date of now in the configured location, expressed as UTC midnight so it
// compares cleanly against date-only schedule values.
func (c *AppConfig) Today(now time.Time) time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolvePath anchors a relative snapshot path at DataPath. Absolute paths are returned cleaned.
func (c *AppConfig) ResolvePath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) || c.DataPath == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(c.DataPath, path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
