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
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables the tool honors,
// e.g. CROP_ANALYSIS_USER_AGENT.
const EnvPrefix = "CROP_ANALYSIS"

// Config holds all configuration for the application
type Config struct {
	Fetch  FetchConfig
	OutDir string
}

// FetchConfig holds HTTP fetch configuration
type FetchConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int
	RateLimit   float64 // requests per second across one invocation, 0 disables
}

var globalConfig *Config

// GetConfig returns a default configuration, with defaults overridable through
// the environment. Configuration will be set by flags in root.go
func GetConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "https://ourworldindata.org/grapher")
	v.SetDefault("user_agent", "Our World In Data data fetch/1.0")
	v.SetDefault("timeout", "60s")
	v.SetDefault("max_attempts", 1)
	v.SetDefault("rate_limit", 2.0)
	v.SetDefault("out_dir", "")

	return &Config{
		Fetch: FetchConfig{
			BaseURL:     v.GetString("base_url"),
			UserAgent:   v.GetString("user_agent"),
			Timeout:     v.GetDuration("timeout"),
			MaxAttempts: v.GetInt("max_attempts"),
			RateLimit:   v.GetFloat64("rate_limit"),
		},
		OutDir: v.GetString("out_dir"),
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// Current returns the global configuration set by SetConfig, or the defaults
// when no configuration has been set yet.
func Current() *Config {
	if globalConfig == nil {
		return GetConfig()
	}
	return globalConfig
}
