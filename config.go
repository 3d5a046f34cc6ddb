package hackbright

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	PostgresDriver = "postgres"
	SQLiteDriver   = "sqlite"
	LibSQLDriver   = "libsql"
	MemoryDriver   = "memory"
)

// MissingPolicy decides what the command loop does when a lookup finds
// no row.
type MissingPolicy string

const (
	// ReportMissing prints a "No ... found" line and keeps prompting
	ReportMissing MissingPolicy = "report"
	// FailOnMissing stops the loop with ErrNotFound
	FailOnMissing MissingPolicy = "fail"
)

type Config struct {
	Driver     string
	DSN        string
	InitSchema bool

	OnMissing MissingPolicy

	// Per-command deadline; zero means none
	QueryTimeout time.Duration

	HistoryFile string
	LogLevel    string
	LogFile     string
}

// DefaultConfig points at the local hackbright PostgreSQL database.
func DefaultConfig() *Config {
	return &Config{
		Driver:    PostgresDriver,
		DSN:       "dbname=hackbright sslmode=disable",
		OnMissing: ReportMissing,
		LogLevel:  "warn",
		LogFile:   "stderr",
	}
}

// FromEnv overrides fields with any HACKBRIGHT_* variables that are set.
func (c *Config) FromEnv() *Config {
	if v, ok := os.LookupEnv("HACKBRIGHT_DRIVER"); ok {
		c.Driver = v
	}

	if v, ok := os.LookupEnv("HACKBRIGHT_DSN"); ok {
		c.DSN = v
	}

	if v, ok := os.LookupEnv("HACKBRIGHT_ON_MISSING"); ok {
		c.OnMissing = MissingPolicy(v)
	}

	return c
}

func (c *Config) Validate() error {
	switch c.Driver {
	case PostgresDriver, SQLiteDriver, LibSQLDriver, MemoryDriver:
	default:
		return fmt.Errorf("%w: %s (must be one of postgres, sqlite, libsql, memory)", ErrUnknownDriver, c.Driver)
	}

	if c.Driver != MemoryDriver && c.DSN == "" {
		return fmt.Errorf("%w: a connection string is required for driver %s", ErrInvalidConfig, c.Driver)
	}

	switch c.OnMissing {
	case ReportMissing, FailOnMissing:
	default:
		return fmt.Errorf("%w: on-missing %q (must be 'report' or 'fail')", ErrInvalidConfig, c.OnMissing)
	}

	if c.QueryTimeout < 0 {
		return fmt.Errorf("%w: negative query timeout %s", ErrInvalidConfig, c.QueryTimeout)
	}

	_, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return nil
}
