// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/penny-vault/tenk/library"
	"github.com/penny-vault/tenk/prompt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tenk",
	Short: "tenk explores financials extracted from 10-K filings",
	Long: `tenk is a command line dashboard for line items extracted from 10-K
filings. It loads a table of revenue, net income, cash from operations,
liabilities and assets per company and fiscal year, derives common ratios and
lets you:

	* browse and filter the table with trend charts
	* export filtered snapshots to CSV, Excel or Parquet
	* ask simple questions such as "What was Tesla revenue in 2023?"
	* build grounded prompts for a language model

Data can be read from a CSV file, an HTTP URL or a PostgreSQL database.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tenk.toml)")

	rootCmd.PersistentFlags().String("data", "", "financials source: CSV file, http(s) URL or postgres:// DSN")
	if err := viper.BindPFlag("data.source", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for data failed")
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for log-level failed")
	}

	viper.SetDefault("data.source", "10K_Extracted_Financials.csv")
	viper.SetDefault("db.table", library.DefaultTable)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("llm.model", "gpt-4o-mini")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tenk" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".tenk")
	}

	viper.SetEnvPrefix("tenk")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}

	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil || viper.GetString("log.level") == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// openTable loads the configured source once for this invocation
func openTable(ctx context.Context) *library.Table {
	source := viper.GetString("data.source")
	table, err := library.Open(ctx, source)
	if err != nil {
		log.Fatal().Err(err).Str("Source", source).Msg("could not load financials")
	}
	return table
}

// newCompleter returns an OpenAI compatible completer when an API key is
// configured and the stub otherwise
func newCompleter(ctx context.Context) prompt.Completer {
	if viper.GetString("llm.api_key") == "" {
		log.Debug().Msg("llm.api_key not set, using stub completer")
		return prompt.StubCompleter{}
	}

	completer, err := prompt.NewOpenAICompleter(ctx, prompt.Config{
		BaseURL: viper.GetString("llm.base_url"),
		APIKey:  viper.GetString("llm.api_key"),
		Model:   viper.GetString("llm.model"),
		RPM:     viper.GetInt("llm.rpm"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not create llm completer")
	}

	return completer
}
