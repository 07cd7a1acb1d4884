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

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/fetcher"
)

// entitiesCmd represents the entities command
var entitiesCmd = &cobra.Command{
	Use:     "entities <slug>",
	Short:   "List the distinct entities in a grapher dataset",
	Long:    `Retrieves the dataset and prints the distinct values of its Entity column, in the order they first appear. Useful to find the exact spelling for the filter command.`,
	Example: `./crop-analysis entities cocoa-bean-production`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEntities,
}

func runEntities(cmd *cobra.Command, args []string) error {
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

	url := fetcher.DatasetURL(cfg.Fetch.BaseURL, slug)
	table, err := client.FetchDataset(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch dataset %s: %w", slug, err)
	}

	entities, err := table.Entities()
	if err != nil {
		return fmt.Errorf("failed to list entities of %s: %w", slug, err)
	}
	for _, entity := range entities {
		fmt.Fprintln(cmd.OutOrStdout(), entity)
	}
	return nil
}
