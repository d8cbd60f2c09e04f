// Package importer reads and writes the CSV interchange format for
// transactions. The column contract is fixed: date, type, category,
// amount, description.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Columns is the canonical CSV column set, in export order.
var Columns = []string{"date", "type", "category", "amount", "description"}

// Row is a single CSV data row, keyed by canonical column name.
type Row map[string]string

// Read parses CSV content into rows. The header row must contain all
// canonical columns, in any order; if any is missing, one error naming
// the missing columns is returned and no rows are produced. Extra
// columns are ignored. Rows shorter than the header yield rows with the
// affected fields unset, which the store then rejects per row.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(Columns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range Columns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV content: %w", err)
		}

		row := make(Row, len(Columns))
		for _, name := range Columns {
			if i := index[name]; i < len(record) {
				row[name] = record[i]
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Write writes the header and the given records. Each record must already
// be projected onto the canonical columns in export order.
func Write(w io.Writer, records [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
