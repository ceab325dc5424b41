// Package catalog holds typed row models for SQL Server system catalog views
// and dynamic management views.
//
// Every row type mirrors one view: one field per column, in view column order,
// with NULL-able columns represented as pointers. Field tags carry the SQL
// column name under both the `db` and `json` keys so that loaders and
// snapshot encoders agree on naming.
//
// A row's zero value is the empty row and a struct literal is the all-fields
// constructor. Rows are plain values and nothing in this package mutates them
// after construction, so they can be shared freely between goroutines.
// Nothing here talks to a database; see package introspect for that.
package catalog
