package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/GustavoCaso/spendwise/internal/logger"
)

type DBConfig struct {
	Source          string        `toml:"source"`
	MaxOpenConns    int           `toml:"max_open_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	JournalMode     string        `toml:"journal_mode"`
	Synchronous     string        `toml:"synchronous"`
	BusyTimeout     int           `toml:"busy_timeout"`
}

type ExportConfig struct {
	Dir      string `toml:"dir"`
	BaseName string `toml:"base_name"`
}

type Config struct {
	DB     DBConfig      `toml:"db"`
	Logger logger.Config `toml:"logger"`
	Export ExportConfig  `toml:"export"`
}

const (
	defaultDBFile      = "spendwise.db"
	defaultJournalMode = "WAL"
	defaultSynchronous = "NORMAL"
	defaultBusyTimeout = 5000
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stderr"
	defaultExportDir   = "."
)

func (c *Config) applyDefaults() {
	if c.DB.Source == "" {
		c.DB.Source = defaultDBFile
	}
	if c.DB.JournalMode == "" {
		c.DB.JournalMode = defaultJournalMode
	}
	if c.DB.Synchronous == "" {
		c.DB.Synchronous = defaultSynchronous
	}
	if c.DB.BusyTimeout == 0 {
		c.DB.BusyTimeout = defaultBusyTimeout
	}
	// SQLite allows a single writer.
	if c.DB.MaxOpenConns == 0 {
		c.DB.MaxOpenConns = 1
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}
	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}
	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaultExportDir
	}
}

func (c *Config) parseEnv() {
	if db := os.Getenv("SPENDWISE_DB"); db != "" {
		c.DB.Source = db
	}

	if level := os.Getenv("SPENDWISE_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("SPENDWISE_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("SPENDWISE_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	if dir := os.Getenv("SPENDWISE_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
}

// Parse reads the optional TOML file, then a .env file in the working
// directory, then environment variables. Later sources win.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	if file != "" {
		_, err := toml.DecodeFile(file, conf)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to decode %s: %w", file, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}
