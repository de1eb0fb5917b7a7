package tickets

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RequiredColumns lists the column names a ticket batch must carry.
// Header names are matched case-sensitively after whitespace trimming.
var RequiredColumns = []string{
	"ticket_id",
	"customer_id",
	"customer_name",
	"product_name",
	"message_from",
	"msg_content",
	"msg_datetime",
	"status",
	"posted_date",
	"closed_date",
}

// ReadBatch parses an uploaded ticket batch into rows, dispatching on the
// file extension. CSV and XLSX are supported.
func ReadBatch(r io.Reader, filename string) ([]Row, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return ReadCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// ReadCSV parses a CSV ticket batch. The first record is the header; missing
// required columns abort before any row is processed.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv batch: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, buildRow(record, columns))
	}

	return rows, nil
}

// ReadXLSX parses an XLSX ticket batch from the workbook's first sheet.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx batch: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyBatch
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %s: %w", sheets[0], err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, buildRow(record, columns))
	}

	return rows, nil
}

// mapColumns builds a column-name to index map from a trimmed header record
// and verifies every required column is present.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return columns, nil
}

func buildRow(record []string, columns map[string]int) Row {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	return Row{
		TicketID:     cell("ticket_id"),
		CustomerID:   cell("customer_id"),
		CustomerName: cell("customer_name"),
		Product:      cell("product_name"),
		Status:       cell("status"),
		PostedDate:   cell("posted_date"),
		ClosedDate:   cell("closed_date"),
		MessageFrom:  cell("message_from"),
		Content:      cell("msg_content"),
		SentAt:       cell("msg_datetime"),
	}
}
