package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/introspect"
)

var (
	viewKind  string
	dumpWhere []string
	dumpLimit int
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List the modelled catalog views and DMVs",
	Args:  cobra.NoArgs,
	RunE:  runViews,
}

var objectTypeCmd = &cobra.Command{
	Use:   "objecttype [code|type_desc]",
	Short: "Translate sys.objects type codes",
	Long:  `Translate a sys.objects type code such as U or FN to its type_desc and back. Without an argument every known type is listed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runObjectType,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <view>",
	Short: "Read a view from the source server",
	Long:  `Read the rows of one catalog view or DMV from the source server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	viewsCmd.Flags().StringVar(&viewKind, "kind", "", "only list views of this kind [catalog|dmv]")

	dumpCmd.Flags().StringArrayVar(&dumpWhere, "where", nil, "column=value filter, may be repeated")
	dumpCmd.Flags().IntVar(&dumpLimit, "limit", 0, "Maximum number of rows (default: unlimited)")
}

func runViews(cmd *cobra.Command, args []string) error {
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	views, err := viewsOfKind(viewKind)
	if err != nil {
		return err
	}
	return w.Views(views)
}

// viewsOfKind returns the registered views of kind, or all of them when kind
// is empty.
func viewsOfKind(kind string) ([]introspect.View, error) {
	if kind == "" {
		return introspect.Views(), nil
	}
	k, err := catalog.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	var views []introspect.View
	for _, v := range introspect.Views() {
		if v.Kind == k {
			views = append(views, v)
		}
	}
	return views, nil
}

func runObjectType(cmd *cobra.Command, args []string) error {
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	types := catalog.ObjectTypes()
	if len(args) > 0 {
		t, err := lookupObjectType(args[0])
		if err != nil {
			return err
		}
		types = []catalog.ObjectType{t}
	}
	return w.Records(objectTypeColumns, objectTypeRecords(types))
}

var objectTypeColumns = []string{"code", "type_desc"}

func lookupObjectType(s string) (catalog.ObjectType, error) {
	if t := catalog.ParseObjectType(s); t != catalog.ObjectTypeUnknown {
		return t, nil
	}
	if t := catalog.ParseObjectTypeDesc(s); t != catalog.ObjectTypeUnknown {
		return t, nil
	}
	return catalog.ObjectTypeUnknown, fmt.Errorf("unknown object type %q", s)
}

func objectTypeRecords(types []catalog.ObjectType) []introspect.Record {
	res := make([]introspect.Record, len(types))
	for i, t := range types {
		res[i] = introspect.Record{"code": t.Code(), "type_desc": t.String()}
	}
	return res
}

// parseFilter splits a column=value filter. Surrounding spaces are trimmed
// from both sides.
func parseFilter(filter string) (string, string, error) {
	column, value, ok := strings.Cut(filter, "=")
	column = strings.TrimSpace(column)
	if !ok || column == "" {
		return "", "", fmt.Errorf("invalid filter %q: expected column=value", filter)
	}
	return column, strings.TrimSpace(value), nil
}

// queryOptions turns column=value filters and a row limit into load options.
func queryOptions(where []string, limit int) ([]introspect.Option, error) {
	var opts []introspect.Option
	for _, w := range where {
		column, value, err := parseFilter(w)
		if err != nil {
			return nil, err
		}
		opts = append(opts, introspect.WithWhere(column, value))
	}
	if limit < 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}
	if limit > 0 {
		opts = append(opts, introspect.WithLimit(limit))
	}
	return opts, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	view, err := introspect.Lookup(args[0])
	if err != nil {
		return err
	}
	opts, err := queryOptions(dumpWhere, dumpLimit)
	if err != nil {
		return err
	}
	w, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	db, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	qctx, cancel := db.QueryContext(ctx)
	defer cancel()
	res, err := view.Load(qctx, db.DB(), opts...)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", view.Name, err)
	}
	return w.Result(res)
}
