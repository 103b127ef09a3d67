package output

import (
	"io"

	"fmpa/internal/domain/entities"
)

// SpreadsheetWriter encodes a sheet into one file format.
type SpreadsheetWriter interface {
	Write(w io.Writer, sheet entities.Sheet) error
	ContentType() string
	Extension() string
}
