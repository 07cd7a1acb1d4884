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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/fetcher"
	"github.com/carsanmilcar/crop-analysis/internal/utils"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:     "metadata <slug>",
	Short:   "Fetch the metadata document of a grapher dataset",
	Long:    `Retrieves the metadata JSON published alongside a dataset (provenance, units, sources) and displays it, or saves the raw document with --out-file.`,
	Example: `./crop-analysis metadata cocoa-bean-production --out-file ./cocoa-bean-production.metadata.json`,
	Args:    cobra.ExactArgs(1),
	RunE:    runMetadata,
}

func runMetadata(cmd *cobra.Command, args []string) error {
	slug := args[0]
	if err := validateSlug(slug); err != nil {
		return err
	}

	client, err := setupClient()
	if err != nil {
		return err
	}
	cfg := config.Current()
	ctx := cmd.Context()

	zap.S().Infof("Starting metadata operation, dataset: %s", slug)

	url := fetcher.MetadataURL(cfg.Fetch.BaseURL, slug)
	metadata, err := client.FetchMetadata(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch metadata for %s: %w", slug, err)
	}

	outFile := cmd.Flag("out-file").Value.String()
	if outFile != "" {
		if err := utils.WriteStringToFile(outFile, string(metadata.Raw)); err != nil {
			return err
		}
		fmt.Printf("Metadata written to: %s\n", outFile)
		return nil
	}

	fmt.Print(fetcher.FormatMetadataAsText(metadata))

	zap.S().Infof("Metadata operation completed.")
	return nil
}

func init() {
	var outFile string

	// Flags for metadata command
	metadataCmd.Flags().StringVarP(&outFile, "out-file", "o", "", "File path to save the raw metadata JSON to (optional)")
}
