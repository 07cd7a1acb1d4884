/*
 * Copyright 2025 crop-analysis authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseColumnsFlag splits a comma-separated column list, trimming whitespace
// and dropping empty entries. Column names keep their case: matching against
// the dataset header is exact.
func ParseColumnsFlag(columnsFlag string) []string {
	if columnsFlag == "" {
		return nil
	}
	var columns []string
	for _, column := range strings.Split(columnsFlag, ",") {
		column = strings.TrimSpace(column)
		if column != "" {
			columns = append(columns, column)
		}
	}
	return columns
}

// DefaultOutputFilePath returns the conventional output filename for a
// command operating on the given dataset slug.
func DefaultOutputFilePath(slug, commandName string) string {
	switch commandName {
	case "metadata":
		return fmt.Sprintf("%s.metadata.json", slug)
	case "filter":
		return fmt.Sprintf("%s_filtered.csv", slug)
	default: // fetch
		return fmt.Sprintf("%s.csv", slug)
	}
}

// WriteStringToFile writes content to path, creating parent directories.
func WriteStringToFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
