// Package render writes tables and cleaning reports to the terminal as a
// go-pretty table, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/paveg/tabclean/internal/clean"
	tbl "github.com/paveg/tabclean/internal/table"
	"github.com/paveg/tabclean/internal/version"
	"gopkg.in/yaml.v3"
)

// Supported formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer writes values in one output format
type Renderer struct {
	w       io.Writer
	format  string
	maxRows int
}

// New creates a renderer. maxRows limits the rows printed by the table
// format; 0 prints every row.
func New(w io.Writer, format string, maxRows int) (*Renderer, error) {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Renderer{w: w, format: format, maxRows: maxRows}, nil
}

// TableData is the serialized form of a table.
type TableData struct {
	Columns []ColumnInfo `json:"columns" yaml:"columns"`
	Rows    [][]any      `json:"rows" yaml:"rows"`
}

// ColumnInfo names a column and its kind.
type ColumnInfo struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

// ColumnBounds pairs a column name with its outlier fences.
type ColumnBounds struct {
	Column       string `json:"column" yaml:"column"`
	clean.Bounds `yaml:",inline"`
}

// CleanReport is the result of a clean run.
type CleanReport struct {
	Before clean.NullReport `json:"nulls_before" yaml:"nulls_before"`
	After  clean.NullReport `json:"nulls_after" yaml:"nulls_after"`
	Table  TableData        `json:"table" yaml:"table"`
}

// NewTableData converts t into its serialized form. Non-finite numbers are
// written as text since JSON cannot represent them.
func NewTableData(t *tbl.Table) TableData {
	data := TableData{
		Columns: make([]ColumnInfo, t.Width()),
		Rows:    make([][]any, t.Len()),
	}
	for j := 0; j < t.Width(); j++ {
		col := t.ColumnAt(j)
		data.Columns[j] = ColumnInfo{Name: col.Name(), Kind: col.Kind().String()}
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		values := make([]any, len(row))
		for j, cell := range row {
			values[j] = cellValue(cell)
		}
		data.Rows[i] = values
	}
	return data
}

func cellValue(c tbl.Cell) any {
	if c.IsNumber() && (math.IsInf(c.Number, 0) || math.IsNaN(c.Number)) {
		return c.String()
	}
	return c.Value()
}

// Table writes t
func (r *Renderer) Table(t *tbl.Table) error {
	switch r.format {
	case FormatJSON:
		return r.json(NewTableData(t))
	case FormatYAML:
		return r.yaml(NewTableData(t))
	default:
		r.prettyTable(t)
		return nil
	}
}

// Nulls writes a null report
func (r *Renderer) Nulls(report clean.NullReport) error {
	switch r.format {
	case FormatJSON:
		return r.json(report)
	case FormatYAML:
		return r.yaml(report)
	default:
		r.prettyNulls(report)
		return nil
	}
}

// Bounds writes the fences of each numeric column
func (r *Renderer) Bounds(bounds []ColumnBounds) error {
	if bounds == nil {
		bounds = []ColumnBounds{}
	}
	switch r.format {
	case FormatJSON:
		return r.json(bounds)
	case FormatYAML:
		return r.yaml(bounds)
	default:
		r.prettyBounds(bounds)
		return nil
	}
}

// Clean writes the result of a clean run
func (r *Renderer) Clean(report CleanReport, t *tbl.Table) error {
	switch r.format {
	case FormatJSON:
		report.Table = NewTableData(t)
		return r.json(report)
	case FormatYAML:
		report.Table = NewTableData(t)
		return r.yaml(report)
	default:
		r.prettyTable(t)
		_, _ = fmt.Fprintln(r.w)
		_, _ = fmt.Fprintf(r.w, "Nulls: %d before, %d after\n", report.Before.Total, report.After.Total)
		return nil
	}
}

// Version writes build information
func (r *Renderer) Version(info version.BuildInfo) error {
	switch r.format {
	case FormatJSON:
		return r.json(info)
	case FormatYAML:
		return r.yaml(info)
	default:
		_, err := fmt.Fprint(r.w, info.String())
		return err
	}
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) newWriter() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) prettyTable(t *tbl.Table) {
	if t.Width() == 0 {
		_, _ = fmt.Fprintln(r.w, "(empty table)")
		return
	}

	w := r.newWriter()
	header := make(table.Row, t.Width())
	configs := make([]table.ColumnConfig, 0, t.Width())
	for j := 0; j < t.Width(); j++ {
		col := t.ColumnAt(j)
		header[j] = col.Name()
		if col.Kind() == tbl.Numeric {
			configs = append(configs, table.ColumnConfig{Number: j + 1, Align: text.AlignRight})
		}
	}
	w.AppendHeader(header)
	w.SetColumnConfigs(configs)

	shown := t.Len()
	if r.maxRows > 0 && shown > r.maxRows {
		shown = r.maxRows
	}
	for i := 0; i < shown; i++ {
		cells := t.Row(i)
		row := make(table.Row, len(cells))
		for j, cell := range cells {
			row[j] = cell.String()
		}
		w.AppendRow(row)
	}
	w.Render()

	if shown < t.Len() {
		_, _ = fmt.Fprintf(r.w, "(%d of %d rows)\n", shown, t.Len())
	} else {
		_, _ = fmt.Fprintf(r.w, "(%d rows)\n", t.Len())
	}
}

func (r *Renderer) prettyNulls(report clean.NullReport) {
	w := r.newWriter()
	w.AppendHeader(table.Row{"Column", "Nulls"})
	w.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, c := range report.Columns {
		w.AppendRow(table.Row{c.Name, c.Count})
	}
	w.AppendFooter(table.Row{"Total", report.Total})
	w.Render()
}

func (r *Renderer) prettyBounds(bounds []ColumnBounds) {
	if len(bounds) == 0 {
		_, _ = fmt.Fprintln(r.w, "(no numeric columns)")
		return
	}

	w := r.newWriter()
	w.AppendHeader(table.Row{"Column", "Q1", "Q3", "IQR", "Lower", "Upper"})
	for _, b := range bounds {
		w.AppendRow(table.Row{b.Column,
			formatFloat(b.Q1), formatFloat(b.Q3), formatFloat(b.IQR),
			formatFloat(b.Lower), formatFloat(b.Upper)})
	}
	w.Render()
}

func formatFloat(v float64) string {
	return tbl.Number(v).String()
}
