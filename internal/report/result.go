package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

// Result renders the rows read from a view.
func (w *Writer) Result(res *introspect.Result) error {
	if w.format == FormatJSON {
		// typed rows keep the column order of the view
		rows := res.Rows
		if rows == nil {
			rows = []any{}
		}
		return w.encode(rows)
	}

	records, err := res.Records()
	if err != nil {
		return err
	}
	return w.Records(res.Columns, records)
}

// Records renders column keyed rows in the order given by columns.
func (w *Writer) Records(columns []string, records []introspect.Record) error {
	switch w.format {
	case FormatTable:
		data := make([][]string, len(records))
		for i, rec := range records {
			row := make([]string, len(columns))
			for j, col := range columns {
				row[j] = cell(rec[col])
			}
			data[i] = row
		}
		w.table(columns, data)
		return nil
	case FormatYAML:
		node, err := recordsNode(columns, records)
		if err != nil {
			return err
		}
		return w.encode(node)
	default:
		if records == nil {
			records = []introspect.Record{}
		}
		return w.encode(records)
	}
}

// recordsNode builds a YAML sequence of mappings whose keys follow columns.
func recordsNode(columns []string, records []introspect.Record) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range records {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, col := range columns {
			var value yaml.Node
			if err := value.Encode(scalar(rec[col])); err != nil {
				return nil, fmt.Errorf("encode %s: %w", col, err)
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: col}, &value)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

type viewInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Kind    string   `json:"kind" yaml:"kind"`
	Scope   string   `json:"scope" yaml:"scope"`
	Keys    []string `json:"keys" yaml:"keys"`
	Columns []string `json:"columns" yaml:"columns"`
}

// Views renders the modelled views.
func (w *Writer) Views(views []introspect.View) error {
	infos := make([]viewInfo, len(views))
	for i, v := range views {
		infos[i] = viewInfo{
			Name:    v.Name,
			Kind:    v.Kind.String(),
			Scope:   v.Scope.String(),
			Keys:    v.Keys,
			Columns: v.Columns,
		}
	}
	if w.format != FormatTable {
		return w.encode(infos)
	}

	data := make([][]string, len(infos))
	for i, v := range infos {
		data[i] = []string{v.Name, v.Kind, v.Scope, strings.Join(v.Keys, ", "), fmt.Sprint(len(v.Columns))}
	}
	w.table([]string{"view", "kind", "scope", "keys", "columns"}, data)
	return nil
}

type snapshotInfo struct {
	Name      string `json:"name" yaml:"name"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	ViewCount int    `json:"view_count" yaml:"view_count"`
	RowCount  int    `json:"row_count" yaml:"row_count"`
}

// Snapshots renders the stored snapshot list.
func (w *Writer) Snapshots(infos []snapshot.Info) error {
	res := make([]snapshotInfo, len(infos))
	for i, in := range infos {
		res[i] = snapshotInfo{
			Name:      in.Name,
			CreatedAt: in.CreatedAt.Format("2006-01-02 15:04:05Z07:00"),
			ViewCount: in.ViewCount,
			RowCount:  in.RowCount,
		}
	}
	if w.format != FormatTable {
		return w.encode(res)
	}

	data := make([][]string, len(res))
	for i, in := range res {
		data[i] = []string{in.Name, in.CreatedAt, fmt.Sprint(in.ViewCount), fmt.Sprint(in.RowCount)}
	}
	w.table([]string{"name", "created at", "views", "rows"}, data)
	return nil
}
