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
	"fmt"

	"github.com/goccy/go-json"
	"github.com/penny-vault/tenk/dashboard"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/library"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	viewCompany string
	viewYear    int
	viewPlot    bool
	viewJSON    bool
)

type viewOutput struct {
	Records []data.Observation `json:"records"`
	Latest  []data.Observation `json:"latest"`
}

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the financials table, latest-year metrics and trend charts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		table := openTable(ctx)

		rows := table.Filter(viewCompany, viewYear)
		latest := table.Latest()

		if viewJSON {
			out, err := json.MarshalIndent(viewOutput{Records: rows, Latest: latest}, "", "  ")
			if err != nil {
				log.Fatal().Err(err).Msg("could not marshal view")
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println("Data view")
		fmt.Println(dashboard.RenderTable(rows))
		fmt.Println()
		fmt.Println("Quick computed metrics (latest year per company)")
		fmt.Println(dashboard.RenderSummary(latest))

		if viewPlot {
			companies := table.Companies()
			if viewCompany != "" && viewCompany != library.AllCompanies {
				companies = []string{viewCompany}
			}

			fmt.Println()
			fmt.Println("Trend plots")
			fmt.Print(dashboard.RenderTrends(companies, table.Rows()))
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVarP(&viewCompany, "company", "c", "", "only show this company")
	viewCmd.Flags().IntVarP(&viewYear, "year", "y", 0, "only show this fiscal year")
	viewCmd.Flags().BoolVarP(&viewPlot, "plot", "p", true, "show trend plots")
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "print the view as JSON")
}
