package introspect

import "github.com/huandu/go-sqlbuilder"

type condition struct {
	column string
	value  any
}

type options struct {
	flavor sqlbuilder.Flavor
	where  []condition
	limit  int
}

// Option tunes the SELECT a loader issues.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{flavor: sqlbuilder.SQLServer}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFlavor sets the SQL dialect used to quote identifiers and render
// placeholders. Loaders default to SQL Server.
func WithFlavor(flavor sqlbuilder.Flavor) Option {
	return func(o *options) {
		o.flavor = flavor
	}
}

// WithWhere keeps rows whose column equals value. Multiple conditions are
// combined with AND.
func WithWhere(column string, value any) Option {
	return func(o *options) {
		o.where = append(o.where, condition{column: column, value: value})
	}
}

// WithLimit caps the number of rows returned. Zero or less means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}
