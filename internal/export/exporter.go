// Package export writes an indicated series to disk.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"SignalSentinel/internal/model"
)

// Exporter writes rows to path in one file format.
type Exporter interface {
	Export(rows []Row, path string) error
	Extension() string
}

// New returns the exporter for format (csv, json, parquet, xlsx), or nil if
// the format is not supported.
func New(format string) Exporter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVExporter{}
	case "json":
		return JSONExporter{}
	case "parquet":
		return ParquetExporter{}
	case "xlsx", "excel":
		return XLSXExporter{}
	default:
		return nil
	}
}

// ForPath picks the exporter from the file extension of path.
func ForPath(path string) (Exporter, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	e := New(ext)
	if e == nil {
		return nil, fmt.Errorf("export: unsupported format %q (use csv, json, parquet, xlsx)", ext)
	}
	return e, nil
}

// Write exports ind to path, choosing the format from the extension.
func Write(ind *model.IndicatedSeries, path string) error {
	e, err := ForPath(path)
	if err != nil {
		return err
	}
	if err := e.Export(Rows(ind), path); err != nil {
		return fmt.Errorf("export %s: %w", e.Extension(), err)
	}
	return nil
}
