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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/dataset"
	"github.com/carsanmilcar/crop-analysis/internal/fetcher"
	"github.com/carsanmilcar/crop-analysis/internal/utils"
)

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:     "filter <slug>",
	Short:   "Fetch a dataset and filter its rows by entity",
	Long:    `Retrieves the dataset, keeps the rows whose Entity column equals the given value exactly (matching is case-sensitive), and projects the requested columns in the order given. An entity with no matching rows produces empty output, not an error.`,
	Example: `./crop-analysis filter cocoa-bean-production --entity Africa --columns "Year,cocoa_beans__00000661__production__005510__tonnes" --format csv`,
	Args:    cobra.ExactArgs(1),
	RunE:    runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	slug := args[0]
	if err := validateSlug(slug); err != nil {
		return err
	}

	entity := cmd.Flag("entity").Value.String()
	format, err := dataset.ParseFormat(cmd.Flag("format").Value.String())
	if err != nil {
		return err
	}
	columns := utils.ParseColumnsFlag(cmd.Flag("columns").Value.String())

	client, err := setupClient()
	if err != nil {
		return err
	}
	cfg := config.Current()
	ctx := cmd.Context()

	zap.S().Infof("Starting filter operation, dataset: %s, entity: %s", slug, entity)

	url := fetcher.DatasetURL(cfg.Fetch.BaseURL, slug)
	table, err := client.FetchDataset(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch dataset %s: %w", slug, err)
	}

	view, err := table.FilterByEntity(entity, columns)
	if err != nil {
		return fmt.Errorf("failed to filter dataset %s: %w", slug, err)
	}
	if len(view.Rows) == 0 {
		zap.S().Warnf("No rows match entity %q in dataset %s", entity, slug)
	}

	outFile := cmd.Flag("out-file").Value.String()
	if outFile == "" {
		return view.Render(cmd.OutOrStdout(), format)
	}

	var rendered strings.Builder
	if err := view.Render(&rendered, format); err != nil {
		return err
	}
	if err := utils.WriteStringToFile(outFile, rendered.String()); err != nil {
		return err
	}
	fmt.Printf("Filtered rows written to: %s\n", outFile)

	zap.S().Infof("Filter operation completed, %d row(s) matched.", len(view.Rows))
	return nil
}

func init() {
	var entity string
	var columns string
	var format string
	var outFile string

	// Flags for filter command
	filterCmd.Flags().StringVarP(&entity, "entity", "e", "", "Entity value to filter on, e.g. 'Africa' (exact, case-sensitive match) - MANDATORY")
	filterCmd.Flags().StringVarP(&columns, "columns", "c", "", "Comma-separated list of columns to project, in output order (defaults to all columns)")
	filterCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, csv, json)")
	filterCmd.Flags().StringVarP(&outFile, "out-file", "o", "", "File path to write the result to (defaults to stdout)")

	filterCmd.MarkFlagRequired("entity")
}
