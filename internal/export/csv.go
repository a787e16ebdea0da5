// Package export renders flat record rows as CSV with a caller-supplied
// column mapping.
package export

import (
	"fmt"
	"strings"
)

// Column maps a row key to its CSV header label.
type Column struct {
	Key   string
	Label string
}

// CSV renders a header row from the column labels, then one comma-joined row
// per record. A value containing a comma is wrapped in double quotes;
// embedded quotes are NOT escaped. That matches the format consumers already
// parse, so it stays as-is.
func CSV(rows []map[string]interface{}, columns []Column) string {
	var b strings.Builder

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.Label
	}
	b.WriteString(strings.Join(labels, ","))

	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = formatValue(row[col.Key])
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(values, ","))
	}

	return b.String()
}

func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}
	var s string
	switch value := v.(type) {
	case string:
		s = value
	case float64:
		// Whole amounts render without a trailing ".000000".
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	default:
		s = fmt.Sprint(value)
	}
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
