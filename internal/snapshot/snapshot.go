package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/koba/sqlcatalog/internal/introspect"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Metadata keys written by the store itself.
const (
	MetaSnapshotID = "snapshot_id"
	MetaViewCount  = "view_count"
)

// rows per INSERT statement
const insertBatchSize = 200

var flavors = map[string]sqlbuilder.Flavor{
	DriverSQLite:   sqlbuilder.SQLite,
	DriverPostgres: sqlbuilder.PostgreSQL,
	DriverMySQL:    sqlbuilder.MySQL,
}

var (
	snapshotStruct = sqlbuilder.NewStruct(new(snapshotRecord))
	metadataStruct = sqlbuilder.NewStruct(new(metadataRecord))
	viewStruct     = sqlbuilder.NewStruct(new(viewRecord))
	rowStruct      = sqlbuilder.NewStruct(new(rowRecord))
)

// View is the content of one catalog view inside a snapshot.
type View struct {
	Name    string
	Columns []string
	Records []introspect.Record
}

// Snapshot is a stored capture of a set of catalog views.
type Snapshot struct {
	Name      string
	CreatedAt time.Time
	Metadata  map[string]string
	Views     map[string]*View
}

// ViewNames returns the captured view names in sorted order.
func (s *Snapshot) ViewNames() []string {
	return slices.Sorted(maps.Keys(s.Views))
}

// Info summarises a stored snapshot.
type Info struct {
	Name      string
	CreatedAt time.Time
	ViewCount int
	RowCount  int
}

// Store persists snapshots in a SQLite, PostgreSQL or MySQL database.
type Store struct {
	db     *sql.DB
	driver string
	flavor sqlbuilder.Flavor
}

// Open connects to the store database and creates its tables when missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	flavor, ok := flavors[driver]
	if !ok {
		return nil, fmt.Errorf("%q: %w", driver, ErrUnsupportedDriver)
	}

	dsn, err := prepareDSN(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to snapshot store: %w", err)
	}
	if err := initializeSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("Driver", driver).
		Msg("snapshot store opened")
	return &Store{db: db, driver: driver, flavor: flavor}, nil
}

func prepareDSN(driver, dsn string) (string, error) {
	if dsn == "" {
		return "", errors.New("store dsn is required")
	}
	switch driver {
	case DriverSQLite:
		if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
			return dsn, nil
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return "", fmt.Errorf("failed to create store directory: %w", err)
		}
	case DriverPostgres:
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			converted, err := pq.ParseURL(dsn)
			if err != nil {
				return "", fmt.Errorf("invalid postgres dsn: %w", err)
			}
			return converted, nil
		}
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return cfg.FormatDSN(), nil
	}
	return dsn, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the store driver name.
func (s *Store) Driver() string {
	return s.driver
}

// Create stores results under name in a single transaction. The store adds
// a random snapshot id to metadata.
func (s *Store) Create(ctx context.Context, name string, metadata map[string]string, results []*introspect.Result) (*Info, error) {
	if name == "" {
		return nil, errors.New("snapshot name is required")
	}
	seen := make(map[string]bool, len(results))
	for _, res := range results {
		if seen[res.Name] {
			return nil, fmt.Errorf("view %s is listed twice", res.Name)
		}
		seen[res.Name] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := s.exists(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", name, ErrSnapshotExists)
	}

	info := &Info{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		ViewCount: len(results),
	}
	if err := s.exec(ctx, tx, snapshotStruct, tableSnapshots, snapshotRecord{
		Name:      name,
		CreatedAt: info.CreatedAt.Format(time.RFC3339Nano),
	}); err != nil {
		return nil, s.insertError(ctx, tx, name, err)
	}

	meta := maps.Clone(metadata)
	if meta == nil {
		meta = make(map[string]string)
	}
	meta[MetaSnapshotID] = uuid.NewString()
	meta[MetaViewCount] = fmt.Sprint(len(results))
	metaRows := make([]any, 0, len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		metaRows = append(metaRows, metadataRecord{SnapshotName: name, Key: key, Value: meta[key]})
	}
	if err := s.exec(ctx, tx, metadataStruct, tableMetadata, metaRows...); err != nil {
		return nil, fmt.Errorf("failed to insert metadata: %w", err)
	}

	for _, res := range results {
		if err := s.storeView(ctx, tx, name, res); err != nil {
			return nil, fmt.Errorf("failed to store view %s: %w", res.Name, err)
		}
		info.RowCount += len(res.Rows)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("Snapshot", name).
		Str("SnapshotID", meta[MetaSnapshotID]).
		Int("ViewCount", info.ViewCount).
		Int("RowCount", info.RowCount).
		Msg("snapshot created")
	return info, nil
}

// insertError reports a failed snapshot insert as ErrSnapshotExists when a
// concurrent Create committed the same name first.
func (s *Store) insertError(ctx context.Context, tx *sql.Tx, name string, err error) error {
	_ = tx.Rollback()
	if exists, lookupErr := s.exists(ctx, s.db, name); lookupErr == nil && exists {
		return fmt.Errorf("%s: %w", name, ErrSnapshotExists)
	}
	return fmt.Errorf("failed to insert snapshot: %w", err)
}

func (s *Store) storeView(ctx context.Context, tx *sql.Tx, snapshot string, res *introspect.Result) error {
	columns, err := json.Marshal(res.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}
	if err := s.exec(ctx, tx, viewStruct, tableViews, viewRecord{
		SnapshotName: snapshot,
		ViewName:     res.Name,
		Columns:      string(columns),
		RowCount:     len(res.Rows),
	}); err != nil {
		return err
	}

	batch := make([]any, 0, insertBatchSize)
	for _, row := range res.Rows {
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		batch = append(batch, rowRecord{SnapshotName: snapshot, ViewName: res.Name, RowJSON: string(rowJSON)})
		if len(batch) == insertBatchSize {
			if err := s.exec(ctx, tx, rowStruct, tableRows, batch...); err != nil {
				return fmt.Errorf("failed to insert rows: %w", err)
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := s.exec(ctx, tx, rowStruct, tableRows, batch...); err != nil {
			return fmt.Errorf("failed to insert rows: %w", err)
		}
	}
	return nil
}

func (s *Store) exec(ctx context.Context, tx *sql.Tx, st *sqlbuilder.Struct, table string, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	query, args := st.For(s.flavor).InsertInto(table, values...).Build()
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) exists(ctx context.Context, q queryer, name string) (bool, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)").From(tableSnapshots).Where(sb.Equal("name", name))
	query, args := sb.Build()

	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to look up snapshot: %w", err)
	}
	return n > 0, nil
}

// selectRecords runs a SELECT of every st column from table and scans one T
// per row.
func selectRecords[T any](ctx context.Context, q queryer, flavor sqlbuilder.Flavor, st *sqlbuilder.Struct, table string, build func(sb *sqlbuilder.SelectBuilder)) ([]T, error) {
	sb := flavor.NewSelectBuilder()
	sb.Select(st.Columns()...).From(table)
	if build != nil {
		build(sb)
	}
	query, args := sb.Build()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var res []T
	for rows.Next() {
		var r T
		if err := rows.Scan(st.Addr(&r)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return res, nil
}

func bySnapshot(column, name string) func(sb *sqlbuilder.SelectBuilder) {
	return func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal(column, name))
	}
}

// Load reads the snapshot called name.
func (s *Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	snaps, err := selectRecords[snapshotRecord](ctx, s.db, s.flavor, snapshotStruct, tableSnapshots, bySnapshot("name", name))
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrSnapshotNotFound)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, snaps[0].CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid creation time for %s: %w", name, err)
	}

	snap := &Snapshot{
		Name:      name,
		CreatedAt: createdAt,
		Metadata:  make(map[string]string),
		Views:     make(map[string]*View),
	}

	meta, err := selectRecords[metadataRecord](ctx, s.db, s.flavor, metadataStruct, tableMetadata, bySnapshot("snapshot_name", name))
	if err != nil {
		return nil, err
	}
	for _, m := range meta {
		snap.Metadata[m.Key] = m.Value
	}

	views, err := selectRecords[viewRecord](ctx, s.db, s.flavor, viewStruct, tableViews, bySnapshot("snapshot_name", name))
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		view := &View{Name: v.ViewName, Records: make([]introspect.Record, 0, v.RowCount)}
		if err := json.Unmarshal([]byte(v.Columns), &view.Columns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal columns of %s: %w", v.ViewName, err)
		}
		snap.Views[v.ViewName] = view
	}

	rows, err := selectRecords[rowRecord](ctx, s.db, s.flavor, rowStruct, tableRows, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal("snapshot_name", name)).OrderBy("id").Asc()
	})
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		view, ok := snap.Views[r.ViewName]
		if !ok {
			return nil, fmt.Errorf("row %d references unknown view %s", i+1, r.ViewName)
		}
		rec, err := introspect.DecodeRecord([]byte(r.RowJSON))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.ViewName, err)
		}
		view.Records = append(view.Records, rec)
	}

	log.Ctx(ctx).Debug().
		Str("Snapshot", name).
		Int("ViewCount", len(snap.Views)).
		Int("RowCount", len(rows)).
		Msg("snapshot loaded")
	return snap, nil
}

// List returns every stored snapshot, oldest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	snaps, err := selectRecords[snapshotRecord](ctx, s.db, s.flavor, snapshotStruct, tableSnapshots, nil)
	if err != nil {
		return nil, err
	}
	views, err := selectRecords[viewRecord](ctx, s.db, s.flavor, viewStruct, tableViews, nil)
	if err != nil {
		return nil, err
	}

	res := make([]Info, 0, len(snaps))
	idx := make(map[string]int, len(snaps))
	for _, sn := range snaps {
		createdAt, err := time.Parse(time.RFC3339Nano, sn.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid creation time for %s: %w", sn.Name, err)
		}
		idx[sn.Name] = len(res)
		res = append(res, Info{Name: sn.Name, CreatedAt: createdAt})
	}
	for _, v := range views {
		if i, ok := idx[v.SnapshotName]; ok {
			res[i].ViewCount++
			res[i].RowCount += v.RowCount
		}
	}

	slices.SortFunc(res, func(a, b Info) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return res, nil
}

// Delete removes the snapshot called name with all its rows.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := s.exists(ctx, tx, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: %w", name, ErrSnapshotNotFound)
	}

	for _, table := range []string{tableRows, tableViews, tableMetadata} {
		if err := s.delete(ctx, tx, table, "snapshot_name", name); err != nil {
			return err
		}
	}
	if err := s.delete(ctx, tx, tableSnapshots, "name", name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Ctx(ctx).Info().
		Str("Snapshot", name).
		Msg("snapshot deleted")
	return nil
}

func (s *Store) delete(ctx context.Context, tx *sql.Tx, table, column, name string) error {
	db := s.flavor.NewDeleteBuilder()
	db.DeleteFrom(table).Where(db.Equal(column, name))
	query, args := db.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}
