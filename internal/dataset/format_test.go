package dataset

import (
	"encoding/json"
	"strings"
	"testing"
)

func testView() *View {
	return &View{
		Columns: []string{"Year", "tonnes"},
		Rows: [][]string{
			{"1961", "835368.0"},
			{"2022", "4103661.0"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"Text", "text", FormatText, false},
		{"CSV", "csv", FormatCSV, false},
		{"JSON", "json", FormatJSON, false},
		{"Mixed case", "JSON", FormatJSON, false},
		{"Unsupported", "xml", "", true},
		{"Empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAsText(t *testing.T) {
	got := testView().FormatAsText()
	for _, want := range []string{"Year", "tonnes", "1961", "4103661.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatAsText() output %q does not contain %q", got, want)
		}
	}

	empty := &View{Columns: []string{"Year"}}
	if got := empty.FormatAsText(); got != "No rows found.\n" {
		t.Errorf("FormatAsText() on empty view = %q, want %q", got, "No rows found.\n")
	}
}

func TestWriteCSV(t *testing.T) {
	var buffer strings.Builder
	if err := testView().WriteCSV(&buffer); err != nil {
		t.Fatalf("WriteCSV() unexpected error: %v", err)
	}
	want := "Year,tonnes\n1961,835368.0\n2022,4103661.0\n"
	if buffer.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buffer.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buffer strings.Builder
	if err := testView().WriteJSON(&buffer); err != nil {
		t.Fatalf("WriteJSON() unexpected error: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal([]byte(buffer.String()), &records); err != nil {
		t.Fatalf("WriteJSON() produced invalid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("WriteJSON() produced %d records, want 2", len(records))
	}
	if records[0]["Year"] != "1961" || records[1]["tonnes"] != "4103661.0" {
		t.Errorf("WriteJSON() records = %v", records)
	}

	var emptyBuffer strings.Builder
	empty := &View{Columns: []string{"Year"}}
	if err := empty.WriteJSON(&emptyBuffer); err != nil {
		t.Fatalf("WriteJSON() on empty view unexpected error: %v", err)
	}
	if strings.TrimSpace(emptyBuffer.String()) != "[]" {
		t.Errorf("WriteJSON() on empty view = %q, want []", emptyBuffer.String())
	}
}
