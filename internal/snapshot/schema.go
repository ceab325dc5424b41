package snapshot

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableSnapshots = "snapshots"
	tableMetadata  = "snapshot_metadata"
	tableViews     = "snapshot_views"
	tableRows      = "snapshot_rows"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_metadata (
		snapshot_name TEXT NOT NULL,
		meta_key TEXT NOT NULL,
		meta_value TEXT NOT NULL,
		PRIMARY KEY (snapshot_name, meta_key)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_views (
		snapshot_name TEXT NOT NULL,
		view_name TEXT NOT NULL,
		columns_json TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		PRIMARY KEY (snapshot_name, view_name)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		snapshot_name TEXT NOT NULL,
		view_name TEXT NOT NULL,
		row_json TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_rows_view
	ON snapshot_rows(snapshot_name, view_name)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_metadata (
		snapshot_name TEXT NOT NULL,
		meta_key TEXT NOT NULL,
		meta_value TEXT NOT NULL,
		PRIMARY KEY (snapshot_name, meta_key)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_views (
		snapshot_name TEXT NOT NULL,
		view_name TEXT NOT NULL,
		columns_json TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		PRIMARY KEY (snapshot_name, view_name)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_rows (
		id BIGSERIAL PRIMARY KEY,
		snapshot_name TEXT NOT NULL,
		view_name TEXT NOT NULL,
		row_json TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_rows_view
	ON snapshot_rows(snapshot_name, view_name)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS, the index is declared inline.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		name VARCHAR(255) PRIMARY KEY,
		created_at VARCHAR(64) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_metadata (
		snapshot_name VARCHAR(255) NOT NULL,
		meta_key VARCHAR(255) NOT NULL,
		meta_value TEXT NOT NULL,
		PRIMARY KEY (snapshot_name, meta_key)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_views (
		snapshot_name VARCHAR(255) NOT NULL,
		view_name VARCHAR(255) NOT NULL,
		columns_json TEXT NOT NULL,
		row_count INT NOT NULL,
		PRIMARY KEY (snapshot_name, view_name)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_rows (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		snapshot_name VARCHAR(255) NOT NULL,
		view_name VARCHAR(255) NOT NULL,
		row_json LONGTEXT NOT NULL,
		INDEX idx_snapshot_rows_view (snapshot_name, view_name)
	)`,
}

var schemas = map[string][]string{
	DriverSQLite:   sqliteSchema,
	DriverPostgres: postgresSchema,
	DriverMySQL:    mysqlSchema,
}

// initializeSchema creates the store tables for driver when missing.
func initializeSchema(ctx context.Context, db *sql.DB, driver string) error {
	for _, stmt := range schemas[driver] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("initialize %s schema: %w", driver, err)
		}
	}
	return nil
}

type snapshotRecord struct {
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
}

type metadataRecord struct {
	SnapshotName string `db:"snapshot_name"`
	Key          string `db:"meta_key"`
	Value        string `db:"meta_value"`
}

type viewRecord struct {
	SnapshotName string `db:"snapshot_name"`
	ViewName     string `db:"view_name"`
	Columns      string `db:"columns_json"`
	RowCount     int    `db:"row_count"`
}

type rowRecord struct {
	SnapshotName string `db:"snapshot_name"`
	ViewName     string `db:"view_name"`
	RowJSON      string `db:"row_json"`
}
