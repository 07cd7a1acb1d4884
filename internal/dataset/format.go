package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Format identifies an output rendering for a view.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name supplied on the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatText:
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (only text, csv and json are supported)", name)
	}
}

// Render writes the view to w in the given format.
func (v *View) Render(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, v.FormatAsText())
		return err
	case FormatCSV:
		return v.WriteCSV(w)
	case FormatJSON:
		return v.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatAsText renders the view as an aligned text table.
func (v *View) FormatAsText() string {
	if len(v.Rows) == 0 {
		return "No rows found.\n"
	}
	var buffer bytes.Buffer
	tw := tabwriter.NewWriter(&buffer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.Columns, "\t"))
	for _, row := range v.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	return buffer.String()
}

// WriteCSV renders the view as CSV, header first.
func (v *View) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(v.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range v.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSON renders the view as an array of objects keyed by column name.
// Cell values stay strings; the source CSV carries no type information.
func (v *View) WriteJSON(w io.Writer) error {
	records := make([]map[string]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		record := make(map[string]string, len(v.Columns))
		for i, column := range v.Columns {
			record[column] = row[i]
		}
		records = append(records, record)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
