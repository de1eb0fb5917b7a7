package reports

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// csvColumns fixes the export column order. The JSON export uses the same
// field names through the Row struct tags, so both formats round-trip the
// same logical values.
var csvColumns = []string{
	"ticket_id",
	"customer_id",
	"customer_name",
	"product_name",
	"status",
	"posted_date",
	"closed_date",
	"resolution_hours",
	"sla_days",
	"sla_met",
	"owner",
	"ai_satisfaction",
	"ai_sentiment",
	"ai_rationale",
	"final_verdict",
}

// WriteCSV renders report rows as CSV with a header record. Nil pointer
// fields render as empty cells, mirroring the JSON export's nulls.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.TicketID,
			row.CustomerID,
			row.CustomerName,
			row.Product,
			row.Status,
			row.PostedDate,
			row.ClosedDate,
			formatFloat(row.ResolutionHours),
			strconv.Itoa(row.SLADays),
			formatBool(row.SLAMet),
			row.Owner,
			formatString(row.Satisfaction),
			formatString(row.Sentiment),
			formatString(row.Rationale),
			string(row.Verdict),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalRows renders report rows as indented JSON for artifact storage.
func MarshalRows(rows []Row) ([]byte, error) {
	return json.MarshalIndent(rows, "", "  ")
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
