package cmd

import (
	"fmt"

	"db-shift/internal/adapter"
	"db-shift/internal/dialect"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name     string `mapstructure:"name"`
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Schema   string `mapstructure:"schema"`
	Active   bool   `mapstructure:"active"`

	Options OptionsConfig `mapstructure:"options"`
}

// OptionsConfig carries the per-connection session options applied once at
// connection open.
type OptionsConfig struct {
	Language  string `mapstructure:"language"`
	DateFirst int    `mapstructure:"datefirst"`
	WeekStart int    `mapstructure:"week_start"`
	TimeZone  string `mapstructure:"time_zone"`
	UseTZ     bool   `mapstructure:"use_tz"`
}

func (c *DBConfig) connParams() dialect.ConnParams {
	return dialect.ConnParams{
		Host:     c.Host,
		Database: c.Database,
		User:     c.User,
		Password: c.Password,
	}
}

// Params assembles the adapter-facing connection parameters.
func (c *DBConfig) Params() adapter.Params {
	return adapter.Params{
		Host:      c.Host,
		Database:  c.Database,
		User:      c.User,
		Password:  c.Password,
		Driver:    c.Driver,
		Language:  c.Options.Language,
		DateFirst: c.Options.DateFirst,
		WeekStart: c.Options.WeekStart,
		TimeZone:  c.Options.TimeZone,
		UseTZ:     c.Options.UseTZ,
	}
}

// Session resolves the configured options into translator session state.
func (c *DBConfig) Session() dialect.Session {
	return c.Params().Session()
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}
