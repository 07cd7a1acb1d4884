package dataset

import (
	"errors"
	"strings"
	"testing"
)

const cocoaFixture = `Entity,Code,Year,cocoa_beans__00000661__production__005510__tonnes
Africa,,1961,835368.0
Africa,,2022,4103661.0
Ecuador,ECU,1961,40000.0
Ecuador,ECU,2022,337149.0
`

func TestParseCSVRoundTrip(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(cocoaFixture))
	if err != nil {
		t.Fatalf("ParseCSV() unexpected error: %v", err)
	}

	wantColumns := []string{"Entity", "Code", "Year", "cocoa_beans__00000661__production__005510__tonnes"}
	gotColumns := table.Columns()
	if len(gotColumns) != len(wantColumns) {
		t.Fatalf("Columns() = %v, want %v", gotColumns, wantColumns)
	}
	for i, name := range wantColumns {
		if gotColumns[i] != name {
			t.Errorf("Columns()[%d] = %q, want %q", i, gotColumns[i], name)
		}
	}

	if got := table.NumRows(); got != 4 {
		t.Errorf("NumRows() = %d, want 4", got)
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty input", ""},
		{"Row with too few fields", "Entity,Year,tonnes\nAfrica,1961\n"},
		{"Row with too many fields", "Entity,Year,tonnes\nAfrica,1961,835368.0,extra\n"},
		{"Unterminated quote", "Entity,Year,tonnes\n\"Africa,1961,835368.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("ParseCSV(%q) expected error, got nil", tt.input)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("ParseCSV(%q) error = %T, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestParseCSVNoSilentPartialParse(t *testing.T) {
	// The mismatched record is the last one; nothing of the table must survive.
	input := "Entity,Year,tonnes\nAfrica,1961,835368.0\nEcuador,1961\n"
	table, err := ParseCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("ParseCSV() expected error for mismatched column counts, got nil")
	}
	if table != nil {
		t.Errorf("ParseCSV() returned a partial table alongside the error: %v rows", table.NumRows())
	}
}

func TestTableAccessors(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(cocoaFixture))
	if err != nil {
		t.Fatalf("ParseCSV() unexpected error: %v", err)
	}

	if got, err := table.Value(0, "Entity"); err != nil || got != "Africa" {
		t.Errorf("Value(0, Entity) = (%q, %v), want (Africa, nil)", got, err)
	}
	if got, err := table.Int(1, "Year"); err != nil || got != 2022 {
		t.Errorf("Int(1, Year) = (%d, %v), want (2022, nil)", got, err)
	}
	if got, err := table.Float(1, "cocoa_beans__00000661__production__005510__tonnes"); err != nil || got != 4103661.0 {
		t.Errorf("Float(1, tonnes column) = (%v, %v), want (4103661.0, nil)", got, err)
	}

	if _, err := table.Value(99, "Entity"); err == nil {
		t.Error("Value(99, Entity) expected out-of-range error, got nil")
	}
	if _, err := table.Value(0, "nope"); err == nil {
		t.Error("Value(0, nope) expected unknown column error, got nil")
	}
	if _, err := table.Int(0, "Entity"); err == nil {
		t.Error("Int(0, Entity) expected parse error, got nil")
	}

	if !table.HasColumn("Year") {
		t.Error("HasColumn(Year) = false, want true")
	}
	if table.HasColumn("year") {
		t.Error("HasColumn(year) = true, want false (column lookup is case-sensitive)")
	}
}
