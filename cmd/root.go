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
	"time"

	"github.com/spf13/cobra"

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/fetcher"
	"github.com/carsanmilcar/crop-analysis/internal/logging"
)

var (
	verbose bool

	// Fetch configuration flags
	baseURL        string
	userAgent      string
	timeoutSeconds int
	retries        int
	rateLimit      float64
)

var rootCmd = &cobra.Command{
	Use:   "crop-analysis",
	Short: "A tool to fetch and filter Our World In Data grapher datasets",
	Long: `crop-analysis is a CLI tool that retrieves public datasets published
through the Our World In Data grapher API (CSV payload plus metadata JSON),
and filters the tabular data by entity with column projection.`,
	PersistentPreRunE: initFlagsAndConfig,
	SilenceUsage:      true,
}

// initFlagsAndConfig initializes fetch configuration using command flags.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	if err := logging.Init(verbose); err != nil {
		return err
	}

	cfg := config.GetConfig()
	if cmd != nil {
		cfg.Fetch.BaseURL = strings.TrimSuffix(baseURL, "/")
		cfg.Fetch.UserAgent = userAgent
		cfg.Fetch.Timeout = time.Duration(timeoutSeconds) * time.Second
		cfg.Fetch.MaxAttempts = retries + 1
		cfg.Fetch.RateLimit = rateLimit
	}
	config.SetConfig(cfg)

	return nil
}

// validateSlug rejects dataset names that cannot be part of a grapher URL.
func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("dataset slug must not be empty")
	}
	if strings.ContainsAny(slug, "/?&# ") {
		return fmt.Errorf("invalid dataset slug: %q (use the short name from the grapher URL, e.g. cocoa-bean-production)", slug)
	}
	return nil
}

func setupClient() (*fetcher.Client, error) {
	cfg := config.Current()
	if cfg == nil {
		return nil, fmt.Errorf("configuration is not initialized")
	}
	return fetcher.NewClient(cfg.Fetch), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	defaults := config.GetConfig()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Fetch configuration flags
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", defaults.Fetch.BaseURL, "Base URL of the grapher endpoint")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", defaults.Fetch.UserAgent, "User-Agent header sent with every request")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", int(defaults.Fetch.Timeout/time.Second), "Request timeout in seconds")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 0, "Number of retries after a failed request (network and timeout errors only)")
	rootCmd.PersistentFlags().Float64Var(&rateLimit, "rate-limit", defaults.Fetch.RateLimit, "Maximum requests per second (0 disables rate limiting)")

	// Add subcommands
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(entitiesCmd)
}
