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

	"github.com/penny-vault/tenk/prompt"
	"github.com/penny-vault/tenk/query"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var promptComplete bool

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt <question...>",
	Short: "Build a grounded language model prompt for a question",
	Long: `The prompt sub-command retrieves the rows for the company named in the
question (or every row when no company is recognized), formats them as a
context block and prints the complete prompt. With --complete the prompt is
sent to the configured model; without llm.api_key a stub answer is returned.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		table := openTable(ctx)

		question := strings.Join(args, " ")
		rows := table.Rows()
		if company, ok := query.DetectCompany(question, table.Companies()); ok {
			rows = table.CompanyRows(company)
		}

		rendered := prompt.Render(prompt.BuildContext(rows), question)
		fmt.Println(rendered)

		if !promptComplete {
			return
		}

		answer, err := newCompleter(ctx).Complete(ctx, rendered)
		if err != nil {
			log.Fatal().Err(err).Msg("completion failed")
		}

		fmt.Println()
		fmt.Println(answer)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().BoolVar(&promptComplete, "complete", false, "send the prompt to the configured language model")
}
