package databrowser

import (
	"bytes"
	"errors"
	"io"

	"github.com/oleg578/swiftcsv"
)

// tableFromCSV decodes a CSV body into a Table. The first record is the
// header; every following record must have the same width.
func tableFromCSV(body []byte) (Table, error) {
	reader := swiftcsv.NewReader(bytes.NewReader(body))

	columns, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, &ParseError{Reason: "response body is empty"}
		}
		return Table{}, &ParseError{Reason: "bad csv header", Err: err}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, &ParseError{Reason: "bad csv record", Err: err}
		}
		if len(record) != len(columns) {
			return Table{}, &ParseError{Reason: "csv record width does not match the header"}
		}
		rows = append(rows, record)
	}

	return Table{Columns: columns, Rows: rows}, nil
}
