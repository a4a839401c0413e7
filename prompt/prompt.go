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

// Package prompt assembles retrieved financial rows into a grounded prompt for
// a language model and sends it through a Completer.
package prompt

import (
	"fmt"
	"strings"

	"github.com/penny-vault/tenk/data"
)

// Template is the fixed instruction template. {context_rows} and
// {user_question} are replaced by Render.
const Template = `
System: You are a financial assistant. Use ONLY the facts below. When calculating, show your work and cite the row(s) used.
Context:
{context_rows}

User question:
{user_question}

Assistant:`

// BuildContext lists one line of revenue, net income and cash from operations
// per row
func BuildContext(rows []data.Observation) string {
	lines := make([]string, len(rows))
	for idx, row := range rows {
		lines[idx] = fmt.Sprintf("%s %d: Revenue %s, NetIncome %s, CashOps %s", row.Company, row.FiscalYear,
			rawValue(row.TotalRevenue), rawValue(row.NetIncome), rawValue(row.CashFromOps))
	}
	return strings.Join(lines, "\n")
}

// Render substitutes the context block and question into Template
func Render(contextRows, question string) string {
	return strings.NewReplacer(
		"{context_rows}", contextRows,
		"{user_question}", question,
	).Replace(Template)
}

func rawValue(a data.Amount) string {
	if a.IsMissing() {
		return "N/A"
	}
	s, _ := a.MarshalCSV()
	return s
}
