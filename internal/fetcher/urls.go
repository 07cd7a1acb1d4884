package fetcher

import (
	"fmt"
	"strings"
)

// grapherQuery pins the grapher export variant: the full CSV with short
// column names, as published by ourworldindata.org.
const grapherQuery = "v=1&csvType=full&useColumnShortNames=true"

// DatasetURL returns the grapher CSV endpoint for a dataset slug,
// e.g. cocoa-bean-production.
func DatasetURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/%s.csv?%s", strings.TrimSuffix(baseURL, "/"), slug, grapherQuery)
}

// MetadataURL returns the grapher metadata JSON endpoint for a dataset slug.
func MetadataURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/%s.metadata.json?%s", strings.TrimSuffix(baseURL, "/"), slug, grapherQuery)
}
