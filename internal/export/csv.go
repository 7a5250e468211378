package export

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVExporter writes rows as CSV with a header; undefined values are empty.
type CSVExporter struct{}

func (CSVExporter) Extension() string { return "csv" }

func (CSVExporter) Export(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := make([]string, 0, len(Header))
		for _, c := range r.cells() {
			switch v := c.(type) {
			case nil:
				record = append(record, "")
			case float64:
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			case string:
				record = append(record, v)
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
