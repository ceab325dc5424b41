package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/koba/sqlcatalog/internal/database"
	"github.com/koba/sqlcatalog/internal/logger"
)

const EnvPrefix = "SQLCATALOG"

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMySQL    = "mysql"

	DefaultStoreDSN = "./snapshots/catalog.db"
)

var (
	storeDrivers = []string{StoreDriverSQLite, StoreDriverPostgres, StoreDriverMySQL}

	errUnknownStoreDriver = errors.New("unknown store driver")
	errEmptyStoreDSN      = errors.New("store dsn is required")
)

type Config struct {
	Log    Log             `mapstructure:"log" yaml:"log"`
	Source database.Config `mapstructure:"source" yaml:"source"`
	Store  Store           `mapstructure:"store" yaml:"store"`
	// Views lists the views a snapshot captures. Empty means every catalog
	// view.
	Views []string `mapstructure:"views" yaml:"views"`
}

type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Store selects the database snapshots are written to.
type Store struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up for keys absent from the config file.
func SetDefaults(v *viper.Viper) {
	src := database.DefaultConfig()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatText)
	v.SetDefault("source.host", src.Host)
	v.SetDefault("source.port", src.Port)
	v.SetDefault("source.database", "")
	v.SetDefault("source.user", "")
	v.SetDefault("source.password", "")
	v.SetDefault("source.instance", "")
	v.SetDefault("source.encrypt", src.Encrypt)
	v.SetDefault("source.trust_server_certificate", false)
	v.SetDefault("source.app_name", src.AppName)
	v.SetDefault("source.dial_timeout", src.DialTimeout.String())
	v.SetDefault("source.query_timeout", "0s")
	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.dsn", DefaultStoreDSN)
	v.SetDefault("views", []string{})
}

// Load reads cfgFile when given, overlays SQLCATALOG_* environment variables
// and bound flags, and decodes the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
		cfg.ErrorUnused = true
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, decoderCfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the sections every command relies on. The source section
// is validated when a connection is opened.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != logger.FormatJSON && c.Log.Format != logger.FormatText {
		return fmt.Errorf("log format %q: expected %s or %s", c.Log.Format, logger.FormatText, logger.FormatJSON)
	}
	if !slices.Contains(storeDrivers, c.Store.Driver) {
		return fmt.Errorf("%w %q, expected one of %v", errUnknownStoreDriver, c.Store.Driver, storeDrivers)
	}
	if c.Store.DSN == "" {
		return errEmptyStoreDSN
	}
	return nil
}
