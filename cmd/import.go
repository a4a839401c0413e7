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
	"time"

	"github.com/hako/durafmt"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/db"
	"github.com/penny-vault/tenk/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importMigrate bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <csv-file|url>",
	Short: "Copy financials from a CSV file or URL into PostgreSQL",
	Long: `The import sub-command loads a financials CSV and upserts each row into the
table named by db.table in the database at db.url. Only the extracted line
items are stored; ratios are always derived when the table is loaded.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		dbURL := viper.GetString("db.url")
		if dbURL == "" {
			log.Fatal().Msg("db.url is not configured")
		}

		if importMigrate {
			if err := db.Migrate(dbURL); err != nil {
				log.Fatal().Err(err).Msg("error running database migration")
			}
		}

		startTime := time.Now()

		table, err := library.Open(ctx, args[0])
		if err != nil {
			log.Fatal().Err(err).Str("Source", args[0]).Msg("could not load financials")
		}

		records := make([]data.Financial, 0, table.Len())
		for _, row := range table.Rows() {
			records = append(records, row.Financial)
		}

		saved, err := library.SaveDB(ctx, dbURL, viper.GetString("db.table"), records)
		if err != nil {
			log.Fatal().Err(err).Int("NumSaved", saved).Msg("could not save financials")
		}

		runTime := time.Since(startTime)
		log.Info().Str("RunTime", durafmt.Parse(runTime).String()).Int("NumSaved", saved).Msg("imported financials")
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importMigrate, "migrate", true, "create or upgrade the financials table first")
}
