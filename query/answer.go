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
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/penny-vault/tenk/data"
)

const (
	WaitingMessage  = "Waiting for a question."
	FallbackMessage = "I couldn't parse that question. Try: 'What was Apple net income in 2024?' or 'Show Tesla revenue growth'."
)

// Answer responds to a free-text question using rows. It always returns a
// message; questions it cannot handle get an instructional reply.
func Answer(question string, rows []data.Observation) string {
	if strings.TrimSpace(question) == "" {
		return WaitingMessage
	}

	companies := Companies(rows)
	q := Parse(question, companies)

	if q.Company == "" {
		return CompanyPrompt(companies)
	}

	if q.Growth {
		return growthAnswer(q.Company, rows)
	}

	if q.Metric == NoMetric {
		return FallbackMessage
	}

	companyRows := CompanyRows(q.Company, rows)
	if len(companyRows) == 0 {
		return FallbackMessage
	}

	if q.Year != 0 {
		for _, row := range companyRows {
			if row.FiscalYear == q.Year {
				return metricLine(q.Company, row.FiscalYear, q.Metric, row)
			}
		}
		return fmt.Sprintf("No data for %s in %d. Available: %s", q.Company, q.Year, strings.Join(years(companyRows), ", "))
	}

	latest := companyRows[len(companyRows)-1]
	return metricLine(q.Company, latest.FiscalYear, q.Metric, latest)
}

// CompanyPrompt asks the user to name one of the known companies
func CompanyPrompt(companies []string) string {
	switch len(companies) {
	case 0:
		return "Please include a company name."
	case 1:
		return fmt.Sprintf("Please include a company name: %s.", companies[0])
	case 2:
		return fmt.Sprintf("Please include a company name: %s or %s.", companies[0], companies[1])
	default:
		last := len(companies) - 1
		return fmt.Sprintf("Please include a company name: %s, or %s.", strings.Join(companies[:last], ", "), companies[last])
	}
}

func growthAnswer(company string, rows []data.Observation) string {
	growth := RevenueGrowth(company, rows)
	lines := make([]string, len(growth))
	for idx, g := range growth {
		lines[idx] = fmt.Sprintf("%s %d — Revenue %s, YoY growth: %s%%", company, g.FiscalYear, data.FormatMoney(g.Revenue), FormatPercent(g.Percent))
	}
	return strings.Join(lines, "\n")
}

func metricLine(company string, year int, metric Metric, row data.Observation) string {
	return fmt.Sprintf("%s %d — %s: %s", company, year, metric.Label(), data.FormatMoney(metric.Value(row)))
}

func years(rows []data.Observation) []string {
	out := make([]string, len(rows))
	for idx, row := range rows {
		out[idx] = strconv.Itoa(row.FiscalYear)
	}
	return out
}
