package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/rs/zerolog/log"
)

var errNotConnected = errors.New("not connected")

// SQLServer implements the Database interface for Microsoft SQL Server
type SQLServer struct {
	config Config
	db     *sql.DB
}

// NewSQLServer creates a new SQL Server connection
func NewSQLServer(config Config) *SQLServer {
	return &SQLServer{config: config}
}

// Connect opens the connection pool and checks the server answers within
// the dial timeout
func (s *SQLServer) Connect(ctx context.Context) error {
	connector, err := mssql.NewConnector(s.config.DSN())
	if err != nil {
		return fmt.Errorf("failed to build SQL Server connector: %w", err)
	}
	db := sql.OpenDB(connector)

	pingCtx := ctx
	if s.config.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, s.config.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping SQL Server: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("Host", s.config.Host).
		Int("Port", s.config.Port).
		Str("Database", s.config.Database).
		Msg("connected to SQL Server")
	s.db = db
	return nil
}

// Close closes the connection pool
func (s *SQLServer) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the connection pool, nil before Connect
func (s *SQLServer) DB() *sql.DB {
	return s.db
}

// QueryContext derives a context bounded by the configured query timeout
func (s *SQLServer) QueryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.QueryTimeout > 0 {
		return context.WithTimeout(ctx, s.config.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

// ServerInfo retrieves the server name, version, edition and current database
func (s *SQLServer) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	if s.db == nil {
		return nil, errNotConnected
	}
	query := `
		SELECT @@SERVERNAME,
		       CAST(SERVERPROPERTY('ProductVersion') AS NVARCHAR(128)),
		       CAST(SERVERPROPERTY('Edition') AS NVARCHAR(128)),
		       DB_NAME()`

	var serverName, version, edition, dbName sql.NullString
	if err := s.db.QueryRowContext(ctx, query).Scan(&serverName, &version, &edition, &dbName); err != nil {
		return nil, fmt.Errorf("failed to query server properties: %w", err)
	}
	return &ServerInfo{
		ServerName:     serverName.String,
		ProductVersion: version.String,
		Edition:        edition.String,
		Database:       dbName.String,
	}, nil
}
