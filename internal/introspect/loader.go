package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type validator interface {
	Validate() error
}

// Columns returns the view columns T maps, in field order.
func Columns[T any]() []string {
	return sqlbuilder.NewStruct(new(T)).Columns()
}

// Load selects every column T maps from source and scans one T per row.
// Rows that carry a mandatory field contract are validated after scanning.
func Load[T any](ctx context.Context, q Querier, source string, opts ...Option) ([]T, error) {
	o := newOptions(opts)
	st := sqlbuilder.NewStruct(new(T))
	columns := st.Columns()

	query, args, err := buildSelect(o, source, columns)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("Source", source).
		Str("Query", query).
		Int("ArgCount", len(args)).
		Msg("loading catalog rows")

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", source, err)
	}
	defer rows.Close()

	var res []T
	for rows.Next() {
		var row T
		if err := rows.Scan(st.Addr(&row)...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", source, len(res)+1, err)
		}
		if v, ok := any(row).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", source, len(res)+1, err)
			}
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s rows: %w", source, err)
	}

	log.Ctx(ctx).Debug().
		Str("Source", source).
		Int("RowCount", len(res)).
		Msg("catalog rows loaded")
	return res, nil
}

func buildSelect(o *options, source string, columns []string) (string, []any, error) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = o.flavor.Quote(c)
	}

	sb := o.flavor.NewSelectBuilder()
	sb.Select(quoted...).From(source)

	if len(o.where) > 0 {
		conds := make([]string, 0, len(o.where))
		for _, w := range o.where {
			if !slices.Contains(columns, w.column) {
				return "", nil, fmt.Errorf("filter %s on %s: %w", w.column, source, ErrUnknownColumn)
			}
			conds = append(conds, sb.Equal(o.flavor.Quote(w.column), w.value))
		}
		sb.Where(conds...)
	}
	if o.limit > 0 {
		sb.Limit(o.limit)
	}

	query, args := sb.Build()
	return query, args, nil
}
