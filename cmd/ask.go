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
	"strings"

	"github.com/goccy/go-json"
	"github.com/penny-vault/tenk/query"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var askJSON bool

type askOutput struct {
	Question string `json:"question"`
	Company  string `json:"company,omitempty"`
	Metric   string `json:"metric"`
	Year     int    `json:"year,omitempty"`
	Growth   bool   `json:"growth"`
	Answer   string `json:"answer"`
}

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Answer a question such as \"What was Tesla revenue in 2023?\"",
	Long: `The ask sub-command answers a narrow set of questions by keyword matching.
A question must name a company and may name a metric (revenue, net income or
profit, cash) and a year. Questions containing "growth" report year-over-year
revenue growth for every year of the company.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		table := openTable(ctx)

		question := strings.Join(args, " ")
		answer := query.Answer(question, table.Rows())

		if askJSON {
			parsed := query.Parse(question, table.Companies())
			out, err := json.MarshalIndent(askOutput{
				Question: question,
				Company:  parsed.Company,
				Metric:   parsed.Metric.String(),
				Year:     parsed.Year,
				Growth:   parsed.Growth,
				Answer:   answer,
			}, "", "  ")
			if err != nil {
				log.Fatal().Err(err).Msg("could not marshal answer")
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println(answer)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the parsed question and answer as JSON")
}
