package cmd

import (
	"io"

	"tidyhome/lib/databrowser"

	"github.com/oleg578/swiftcsv"
)

func writeCsv(w io.Writer, t databrowser.Table) error {
	writer := swiftcsv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Flush()
}
