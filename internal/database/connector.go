package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"
	"time"
)

const (
	DefaultPort        = 1433
	DefaultAppName     = "sqlcatalog"
	DefaultDialTimeout = 15 * time.Second
)

var encryptModes = []string{"disable", "false", "true", "strict"}

var (
	errHostRequired   = errors.New("host is required")
	errInvalidPort    = errors.New("port must be between 1 and 65535")
	errInvalidEncrypt = errors.New("unsupported encrypt mode")
)

// Config holds the SQL Server connection settings
type Config struct {
	Host                   string        `mapstructure:"host"`
	Port                   int           `mapstructure:"port"`
	Database               string        `mapstructure:"database"`
	User                   string        `mapstructure:"user"`
	Password               string        `mapstructure:"password"`
	Instance               string        `mapstructure:"instance"`
	Encrypt                string        `mapstructure:"encrypt"`
	TrustServerCertificate bool          `mapstructure:"trust_server_certificate"`
	AppName                string        `mapstructure:"app_name"`
	DialTimeout            time.Duration `mapstructure:"dial_timeout"`
	QueryTimeout           time.Duration `mapstructure:"query_timeout"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Host:        "localhost",
		Port:        DefaultPort,
		Encrypt:     "false",
		AppName:     DefaultAppName,
		DialTimeout: DefaultDialTimeout,
	}
}

// Validate checks the settings before a connection is attempted
func (c Config) Validate() error {
	if c.Host == "" {
		return errHostRequired
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Port)
	}
	if c.Encrypt != "" && !slices.Contains(encryptModes, c.Encrypt) {
		return fmt.Errorf("%w %q, expected one of %v", errInvalidEncrypt, c.Encrypt, encryptModes)
	}
	return nil
}

// DSN renders the settings as a sqlserver:// connection URL. A named
// instance replaces the port, the driver resolves it through the browser
// service.
func (c Config) DSN() string {
	q := url.Values{}
	if c.Database != "" {
		q.Set("database", c.Database)
	}
	if c.Encrypt != "" {
		q.Set("encrypt", c.Encrypt)
	}
	if c.TrustServerCertificate {
		q.Set("TrustServerCertificate", "true")
	}
	if c.AppName != "" {
		q.Set("app name", c.AppName)
	}
	if c.DialTimeout > 0 {
		q.Set("dial timeout", strconv.Itoa(int(c.DialTimeout.Seconds())))
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		RawQuery: q.Encode(),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.Instance != "" {
		u.Host = c.Host
		u.Path = c.Instance
	}
	return u.String()
}

// ServerInfo identifies the server a connection landed on
type ServerInfo struct {
	ServerName     string `json:"server_name"`
	ProductVersion string `json:"product_version"`
	Edition        string `json:"edition"`
	Database       string `json:"database"`
}

// Database is an open connection to the server being inspected
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	DB() *sql.DB
	// QueryContext bounds ctx by the configured query timeout.
	QueryContext(ctx context.Context) (context.Context, context.CancelFunc)
	ServerInfo(ctx context.Context) (*ServerInfo, error)
}

// NewDatabase validates the settings and returns an unconnected database
func NewDatabase(config Config) (Database, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source config: %w", err)
	}
	return NewSQLServer(config), nil
}
