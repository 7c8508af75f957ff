package hoahoabot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/gcfg.v1"

	"github.com/ilyalavrinov/hoahoabot/pkg/tgbotbase"
)

const (
	// EnvToken overrides [TGBot] Token from the configuration file
	EnvToken = "HOAHOABOT_TOKEN"

	defaultTimezone = "Asia/Ho_Chi_Minh"
	tetDateLayout   = "2006-01-02"
)

type Config struct {
	tgbotbase.Config
	Hoahoa struct {
		Timezone string
		TetDate  string // YYYY-MM-DD, midnight in Timezone
	}
}

// NewConfig reads filename if it exists and applies defaults and environment overrides
func NewConfig(filename string) (Config, error) {
	var cfg Config
	cfg.Hoahoa.Timezone = defaultTimezone

	err := gcfg.ReadFileInto(&cfg, filename)
	switch {
	case err == nil:
		Infow("Configuration has been read", "filename", filename)
	case errors.Is(err, fs.ErrNotExist):
		Infow("No configuration file, using defaults and environment", "filename", filename)
	default:
		return cfg, fmt.Errorf("cannot parse configuration file %q: %w", filename, err)
	}

	if token := os.Getenv(EnvToken); token != "" {
		cfg.TGBot.Token = token
	}
	if cfg.Hoahoa.Timezone == "" {
		cfg.Hoahoa.Timezone = defaultTimezone
	}
	return cfg, nil
}

func (cfg Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Hoahoa.Timezone)
	if err != nil {
		return nil, fmt.Errorf("cannot load timezone %q: %w", cfg.Hoahoa.Timezone, err)
	}
	return loc, nil
}

// TetDate returns the configured Tet or zero time when it is not set
func (cfg Config) TetDate(loc *time.Location) (time.Time, error) {
	if cfg.Hoahoa.TetDate == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(tetDateLayout, cfg.Hoahoa.TetDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse Tet date %q: %w", cfg.Hoahoa.TetDate, err)
	}
	return t, nil
}
