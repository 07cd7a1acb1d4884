package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	metadata, err := ParseMetadata(strings.NewReader(testMetadataJSON))
	require.NoError(t, err)

	assert.Equal(t, "Cocoa bean production", metadata.Chart.Title)
	column := metadata.Columns["cocoa_beans__00000661__production__005510__tonnes"]
	assert.Equal(t, "tonnes", column.Unit)
	assert.Equal(t, "t", column.ShortUnit)
}

func TestParseMetadataInvalidJSON(t *testing.T) {
	_, err := ParseMetadata(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestFormatMetadataAsText(t *testing.T) {
	metadata, err := ParseMetadata(strings.NewReader(testMetadataJSON))
	require.NoError(t, err)

	got := FormatMetadataAsText(metadata)
	assert.Contains(t, got, "Title: Cocoa bean production")
	assert.Contains(t, got, "--- Column: cocoa_beans__00000661__production__005510__tonnes ---")
	assert.Contains(t, got, "Unit: tonnes")
}
