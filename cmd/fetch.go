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
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/dataset"
	"github.com/carsanmilcar/crop-analysis/internal/fetcher"
	"github.com/carsanmilcar/crop-analysis/internal/utils"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:     "fetch <slug>...",
	Short:   "Fetch one or more grapher datasets",
	Long:    `Retrieves the CSV payload of each dataset, parses it, and prints a row/column summary. With --out-dir the raw payload is saved to disk; files that already exist are not downloaded again.`,
	Example: `./crop-analysis fetch cocoa-bean-production --out-dir ./data_inputs --with-metadata`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	for _, slug := range args {
		if err := validateSlug(slug); err != nil {
			return err
		}
	}

	outDir := cmd.Flag("out-dir").Value.String()
	withMetadata, _ := cmd.Flags().GetBool("with-metadata")
	if withMetadata && outDir == "" {
		return fmt.Errorf("--with-metadata requires --out-dir")
	}

	client, err := setupClient()
	if err != nil {
		return err
	}
	cfg := config.Current()
	ctx := cmd.Context()

	startTime := time.Now()
	zap.S().Infof("Fetching %d dataset(s)...", len(args))

	type summary struct {
		slug    string
		rows    int
		columns int
	}

	var summaries []summary
	var wg sync.WaitGroup
	var mu sync.Mutex
	errorChannel := make(chan error, len(args)*2)

	for _, slug := range args {
		wg.Add(1)
		go func(slug string) {
			defer wg.Done()
			logPrefix := fmt.Sprintf("Dataset[%s]", slug)

			url := fetcher.DatasetURL(cfg.Fetch.BaseURL, slug)

			var table *dataset.Table
			var fetchErr error
			if outDir != "" {
				path := filepath.Join(outDir, utils.DefaultOutputFilePath(slug, "fetch"))
				if err := client.DownloadFile(ctx, url, path); err != nil {
					errorChannel <- fmt.Errorf("%s download: %w", logPrefix, err)
					return
				}
				table, fetchErr = parseDatasetFile(path)
			} else {
				table, fetchErr = client.FetchDataset(ctx, url)
			}
			if fetchErr != nil {
				errorChannel <- fmt.Errorf("%s fetch: %w", logPrefix, fetchErr)
				return
			}

			if withMetadata {
				metadataPath := filepath.Join(outDir, utils.DefaultOutputFilePath(slug, "metadata"))
				metadataURL := fetcher.MetadataURL(cfg.Fetch.BaseURL, slug)
				if err := client.DownloadFile(ctx, metadataURL, metadataPath); err != nil {
					zap.S().Warnf("%s Failed to download metadata: %v", logPrefix, err)
				}
			}

			mu.Lock()
			summaries = append(summaries, summary{slug: slug, rows: table.NumRows(), columns: len(table.Columns())})
			mu.Unlock()
		}(slug)
	}

	wg.Wait()
	close(errorChannel)

	var allErrors []error
	for err := range errorChannel {
		allErrors = append(allErrors, err)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].slug < summaries[j].slug
	})
	for _, s := range summaries {
		fmt.Printf("%s: %d rows, %d columns\n", s.slug, s.rows, s.columns)
	}

	if len(allErrors) > 0 {
		errorMessages := make([]string, len(allErrors))
		for i, e := range allErrors {
			errorMessages[i] = e.Error()
		}
		return fmt.Errorf("encountered %d error(s) while fetching:\n- %s",
			len(allErrors), strings.Join(errorMessages, "\n- "))
	}

	zap.S().Infof("Fetch completed in %s.", time.Since(startTime))
	return nil
}

// parseDatasetFile re-parses a payload saved by DownloadFile so the summary
// reflects exactly what is on disk.
func parseDatasetFile(path string) (*dataset.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	return dataset.ParseCSV(file)
}

func init() {
	var outDir string
	var withMetadata bool

	// Flags for fetch command
	fetchCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory to save raw payloads to (optional; without it datasets are only summarized)")
	fetchCmd.Flags().BoolVar(&withMetadata, "with-metadata", false, "Also download the metadata JSON document (requires --out-dir)")
}
