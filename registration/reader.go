package registration

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile reads a registration export, dispatching on the file extension.
// CSV and XLSX files are supported.
func ReadFile(path string) ([]*Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return Parse(f)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// Parse reads CSV registration data and returns one record per data row.
// The first row is the header.
func Parse(r io.Reader) ([]*Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	return rowsToRecords(rows), nil
}

func readXLSX(path string) ([]*Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	return rowsToRecords(rows), nil
}

func rowsToRecords(rows [][]string) []*Record {
	if len(rows) == 0 {
		return nil
	}

	header := rows[0]
	colMap := buildColumnMap(header)

	records := make([]*Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		records = append(records, rowToRecord(rows[i], header, colMap, i+1))
	}
	return records
}

func rowToRecord(row []string, header []string, colMap map[int]string, sourceRow int) *Record {
	rec := &Record{SourceRow: sourceRow}

	for i, value := range row {
		if i >= len(header) {
			break
		}

		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		field, ok := colMap[i]
		if !ok {
			rec.SetExtra(extraKeyAt(header, i), value)
			continue
		}

		switch field {
		case FieldTimestamp:
			rec.Timestamp = value
		case FieldFullName:
			rec.FullName = value
		case FieldEmail:
			rec.Email = value
		case FieldAffiliation:
			rec.Affiliation = value
		case FieldAttending:
			rec.Attending = value
		case FieldRole:
			rec.Role = value
		case FieldSubmittedPaper:
			rec.SubmittedPaper = value
		case FieldDriving:
			rec.Driving = value
		case FieldComments:
			rec.Comments = value
		}
	}

	return rec
}
