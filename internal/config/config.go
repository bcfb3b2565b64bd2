package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the game.
type Config struct {
	DBPath        string        // empty resolves via store.DefaultDBPath
	LogFile       string        // empty logs next to the database
	LogLevel      string        // debug, info, warn or error
	Sound         bool          // audio collaborator on/off
	Narration     bool          // narration collaborator on/off
	FeedbackDelay time.Duration // pause after an answer before the next round
	Seed          uint64        // 0 seeds from the clock
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		Sound:         true,
		Narration:     true,
		FeedbackDelay: 2 * time.Second,
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the game still starts when .env is absent.
	_ = godotenv.Load()

	def := DefaultConfig()
	return Config{
		DBPath:        envOr("PEEKABOO_DB", def.DBPath),
		LogFile:       envOr("PEEKABOO_LOG_FILE", def.LogFile),
		LogLevel:      strings.ToLower(envOr("PEEKABOO_LOG_LEVEL", def.LogLevel)),
		Sound:         envBoolOr("PEEKABOO_SOUND", def.Sound),
		Narration:     envBoolOr("PEEKABOO_NARRATION", def.Narration),
		FeedbackDelay: envDurationOr("PEEKABOO_FEEDBACK_DELAY", def.FeedbackDelay),
		Seed:          envUintOr("PEEKABOO_SEED", def.Seed),
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("PEEKABOO_FEEDBACK_DELAY cannot be negative")
	}
	if c.FeedbackDelay > 30*time.Second {
		return fmt.Errorf("PEEKABOO_FEEDBACK_DELAY must be at most 30s, got %s", c.FeedbackDelay)
	}
	return nil
}

// ResolveLogFile returns the log path, defaulting to peekaboo.log beside
// the database file.
func (c Config) ResolveLogFile(dbPath string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(dbPath), "peekaboo.log")
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("PEEKABOO_LOG_LEVEL: unknown level %q", s)
	}
	return lvl, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		fmt.Fprintf(os.Stderr, "warning: invalid value for %s=%q, using default %t\n", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "warning: invalid value for %s=%q, using default %s\n", key, v, def)
	}
	return def
}

func envUintOr(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "warning: invalid value for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
