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

	"github.com/penny-vault/tenk/export"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exportCompany string
	exportYear    int
	exportFormat  string
	exportOut     string
	exportUpload  bool
	exportDir     string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a snapshot of the filtered view",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid export format")
		}

		table := openTable(ctx)
		rows := table.Filter(exportCompany, exportYear)

		fn := exportOut
		if fn == "" {
			fn = export.FileName(exportCompany, exportYear, format)
		}

		if err := export.Write(fn, format, rows); err != nil {
			log.Fatal().Err(err).Str("FileName", fn).Msg("could not export snapshot")
		}

		if exportUpload {
			bucket := viper.GetString("backblaze.bucket")
			if bucket == "" {
				log.Fatal().Msg("backblaze.bucket is not configured")
			}

			if err := export.Upload(fn, bucket, exportDir); err != nil {
				log.Fatal().Err(err).Msg("could not upload snapshot")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportCompany, "company", "c", "", "only export this company")
	exportCmd.Flags().IntVarP(&exportYear, "year", "y", 0, "only export this fiscal year")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "file format: csv, xlsx or parquet")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default is derived from the filters)")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "upload the snapshot to backblaze.bucket")
	exportCmd.Flags().StringVar(&exportDir, "dir", "snapshots", "directory within the bucket")
}
