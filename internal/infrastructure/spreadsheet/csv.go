package spreadsheet

import (
	"encoding/csv"
	"io"

	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.SpreadsheetWriter = CSVWriter{}

// utf8BOM lets spreadsheet software detect UTF-8 accents.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter writes semicolon-separated values, the separator French spreadsheet locales expect.
type CSVWriter struct{}

func (CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVWriter) Extension() string { return "csv" }

func (CSVWriter) Write(w io.Writer, sheet entities.Sheet) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if len(sheet.Header) > 0 {
		if err := cw.Write(sheet.Header); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(sheet.Rows); err != nil {
		return err
	}
	return cw.Error()
}
