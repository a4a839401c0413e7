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
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/tenk/db"
	"github.com/penny-vault/tenk/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type dataConfig struct {
	Source string `toml:"source"`
}

type dbConfig struct {
	URL   string `toml:"url,omitempty"`
	Table string `toml:"table"`
}

type llmConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
	Model   string `toml:"model"`
	RPM     int    `toml:"rpm"`
}

type fileConfig struct {
	Data dataConfig `toml:"data"`
	DB   dbConfig   `toml:"db"`
	LLM  llmConfig  `toml:"llm"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather data source settings and write the config file",
	Run: func(cmd *cobra.Command, args []string) {
		conf := fileConfig{
			Data: dataConfig{Source: "10K_Extracted_Financials.csv"},
			DB:   dbConfig{Table: library.DefaultTable},
			LLM:  llmConfig{Model: "gpt-4o-mini", RPM: 20},
		}

		form := huh.NewForm(
			// Where the financials come from
			huh.NewGroup(
				huh.NewInput().
					Title("Path or URL of the financials CSV (or a postgres:// DSN):").
					Value(&conf.Data.Source),
			),

			// Optional database used by import
			huh.NewGroup(
				huh.NewInput().
					Title("PostgreSQL DSN used by import, leave blank to skip (postgres://[user[:password]@][netloc][:port][/dbname])").
					Value(&conf.DB.URL).
					Validate(func(dsn string) error {
						if dsn == "" {
							return nil
						}
						_, err := pgx.ParseConfig(dsn)
						return err
					}),
			),

			// Optional language model
			huh.NewGroup(
				huh.NewInput().
					Title("OpenAI compatible base URL (blank for the default):").
					Value(&conf.LLM.BaseURL),
				huh.NewInput().
					Title("API key (blank keeps the stub completer):").
					Password(true).
					Value(&conf.LLM.APIKey),
				huh.NewInput().
					Title("Model name:").
					Value(&conf.LLM.Model),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering settings")
		}

		if conf.DB.URL != "" {
			log.Info().Msg("creating database tables")
			if err := db.Migrate(conf.DB.URL); err != nil {
				log.Fatal().Err(err).Msg("error running database migration")
			}
			log.Info().Msg("database tables created")
		}

		// save settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".tenk.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving settings to config file")
		configData, err := toml.Marshal(conf)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0600)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("tenk has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
