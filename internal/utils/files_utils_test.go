package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseColumnsFlag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty flag", "", nil},
		{"Single column", "Year", []string{"Year"}},
		{"Multiple columns", "Year,tonnes", []string{"Year", "tonnes"}},
		{"Whitespace trimmed", " Year , tonnes ", []string{"Year", "tonnes"}},
		{"Empty entries dropped", "Year,,tonnes,", []string{"Year", "tonnes"}},
		{"Case preserved", "year,Entity", []string{"year", "Entity"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColumnsFlag(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColumnsFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultOutputFilePath(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		command string
		want    string
	}{
		{"Fetch", "cocoa-bean-production", "fetch", "cocoa-bean-production.csv"},
		{"Metadata", "cocoa-bean-production", "metadata", "cocoa-bean-production.metadata.json"},
		{"Filter", "cocoa-bean-production", "filter", "cocoa-bean-production_filtered.csv"},
		{"Unknown command falls back to CSV", "cocoa-bean-production", "other", "cocoa-bean-production.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultOutputFilePath(tt.slug, tt.command); got != tt.want {
				t.Errorf("DefaultOutputFilePath(%q, %q) = %q, want %q", tt.slug, tt.command, got, tt.want)
			}
		})
	}
}

func TestWriteStringToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := WriteStringToFile(path, "hello"); err != nil {
		t.Fatalf("WriteStringToFile() unexpected error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("file content = %q, want %q", content, "hello")
	}
}
