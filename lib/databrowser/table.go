package databrowser

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table is the row/column result of one data browser call. It is owned
// by the caller once returned, nothing in this package holds onto it.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) NumRows() int {
	return len(t.Rows)
}

func (t Table) NumColumns() int {
	return len(t.Columns)
}

// Render writes the table to w in a human readable rounded layout.
func (t Table) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}

	tw.SetStyle(table.StyleRounded)
	tw.Render()
}

// tableFromObjects decodes a JSON envelope of the form
// {"<key>": [{...}, ...]} into a Table. Columns are the first object's
// keys in alphabetical order so identical responses always produce
// identical tables.
func tableFromObjects(key string, body []byte) (Table, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var envelope map[string]json.RawMessage
	if err := decoder.Decode(&envelope); err != nil {
		return Table{}, &ParseError{Reason: "response is not a json object", Err: err}
	}

	rowsRaw, ok := envelope[key]
	if !ok {
		return Table{}, &ParseError{Reason: "response is missing the " + strconv.Quote(key) + " field"}
	}

	rowDecoder := json.NewDecoder(bytes.NewReader(rowsRaw))
	rowDecoder.UseNumber()
	var objects []map[string]any
	if err := rowDecoder.Decode(&objects); err != nil {
		return Table{}, &ParseError{Reason: strconv.Quote(key) + " is not an array of objects", Err: err}
	}

	if len(objects) == 0 {
		return Table{}, nil
	}

	columns := make([]string, 0, len(objects[0]))
	for col := range objects[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	rows := make([][]string, len(objects))
	for i, object := range objects {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = formatCell(object[col])
		}
		rows[i] = row
	}

	return Table{Columns: columns, Rows: rows}, nil
}

func formatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		// nested objects/arrays, keep them as raw json text
		encoded, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
