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
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/penny-vault/tenk/query"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var answerStyle = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63"))

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions interactively",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		table := openTable(ctx)
		rows := table.Rows()

		for {
			var question string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Type your question (blank to quit)").
						Description("examples: 'What was Tesla revenue in 2023?', 'Show Microsoft revenue growth'").
						Value(&question),
				),
			)

			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return
				}
				log.Fatal().Err(err).Msg("error reading question")
			}

			question = strings.TrimSpace(question)
			if question == "" || question == "exit" || question == "quit" {
				return
			}

			fmt.Println(answerStyle.Render(query.Answer(question, rows)))
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
