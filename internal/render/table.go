package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Table.Write
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV}

// Table is an in-memory container with a fixed header row
type Table struct {
	Headers []string

	mu   sync.RWMutex
	rows []Row
}

func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

func (t *Table) Replace(rows []Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = rows
}

// Rows returns a copy of the current rows
func (t *Table) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Row finds the row rendered for the given id
func (t *Table) Row(id string) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, r := range t.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// Action finds the named trigger on the row for id
func (t *Table) Action(id, name string) (Action, bool) {
	row, ok := t.Row(id)
	if !ok {
		return Action{}, false
	}
	return row.Action(name)
}

// records pairs each row's cells with the headers
func (t *Table) records() []map[string]string {
	rows := t.Rows()
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(r.Cells) {
				rec[h] = r.Cells[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// Write prints the table in the requested format
func (t *Table) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return t.writeText(w)
	case FormatJSON:
		encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(t.records())
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(t.records())
	case FormatCSV:
		return t.writeCSV(w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (t *Table) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.Headers, "\t"))); err != nil {
		return err
	}
	for _, r := range t.Rows() {
		if _, err := fmt.Fprintln(tw, strings.Join(r.Cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (t *Table) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	for _, r := range t.Rows() {
		if err := writer.Write(r.Cells); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
