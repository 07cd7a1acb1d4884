package fetcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Metadata is the grapher metadata document fetched alongside a dataset. It
// describes provenance, units and sources; it is display-only and is never
// cross-validated against the dataset's structure.
type Metadata struct {
	Chart   ChartMetadata             `json:"chart"`
	Columns map[string]ColumnMetadata `json:"columns"`

	// Raw preserves the document verbatim, unknown fields included.
	Raw json.RawMessage `json:"-"`
}

// ChartMetadata describes the chart the dataset backs.
type ChartMetadata struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Citation         string   `json:"citation"`
	OriginalChartURL string   `json:"originalChartUrl"`
	Selection        []string `json:"selection"`
}

// ColumnMetadata describes one dataset column.
type ColumnMetadata struct {
	TitleShort       string `json:"titleShort"`
	TitleLong        string `json:"titleLong"`
	DescriptionShort string `json:"descriptionShort"`
	Unit             string `json:"unit"`
	ShortUnit        string `json:"shortUnit"`
	Timespan         string `json:"timespan"`
	LastUpdated      string `json:"lastUpdated"`
	CitationShort    string `json:"citationShort"`
	CitationFull     string `json:"citationFull"`
}

// ParseMetadata decodes a metadata document from r.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata body: %w", err)
	}
	var metadata Metadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, err
	}
	metadata.Raw = raw
	return &metadata, nil
}

// FormatMetadataAsText renders a metadata document for the terminal.
func FormatMetadataAsText(metadata *Metadata) string {
	var buffer bytes.Buffer

	if metadata.Chart.Title != "" {
		buffer.WriteString(fmt.Sprintf("Title: %s\n", metadata.Chart.Title))
	}
	if metadata.Chart.Subtitle != "" {
		buffer.WriteString(fmt.Sprintf("Subtitle: %s\n", metadata.Chart.Subtitle))
	}
	if metadata.Chart.Citation != "" {
		buffer.WriteString(fmt.Sprintf("Citation: %s\n", metadata.Chart.Citation))
	}
	if metadata.Chart.OriginalChartURL != "" {
		buffer.WriteString(fmt.Sprintf("Chart: %s\n", metadata.Chart.OriginalChartURL))
	}

	if len(metadata.Columns) == 0 {
		return buffer.String()
	}

	names := make([]string, 0, len(metadata.Columns))
	for name := range metadata.Columns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		column := metadata.Columns[name]
		buffer.WriteString(fmt.Sprintf("\n--- Column: %s ---\n", name))
		if column.TitleShort != "" {
			buffer.WriteString(fmt.Sprintf("  Title: %s\n", column.TitleShort))
		}
		if column.DescriptionShort != "" {
			buffer.WriteString(fmt.Sprintf("  Description: %s\n", strings.TrimSpace(column.DescriptionShort)))
		}
		if column.Unit != "" {
			buffer.WriteString(fmt.Sprintf("  Unit: %s\n", column.Unit))
		}
		if column.Timespan != "" {
			buffer.WriteString(fmt.Sprintf("  Timespan: %s\n", column.Timespan))
		}
		if column.LastUpdated != "" {
			buffer.WriteString(fmt.Sprintf("  Last updated: %s\n", column.LastUpdated))
		}
		if column.CitationShort != "" {
			buffer.WriteString(fmt.Sprintf("  Source: %s\n", column.CitationShort))
		}
	}
	return buffer.String()
}
