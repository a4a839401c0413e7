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

// Package query answers a narrow vocabulary of questions about the loaded
// financials by keyword matching. A question is broken into a company, a
// metric and a year by three independent detectors and the result is
// dispatched by a small fixed set of rules.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/penny-vault/tenk/data"
)

// Metric is one of the raw line items a question can ask about
type Metric int

const (
	NoMetric Metric = iota
	TotalRevenue
	NetIncome
	CashFromOps
)

var yearRegex = regexp.MustCompile(`20\d{2}`)

// Label is the column name used when reporting the metric
func (m Metric) Label() string {
	switch m {
	case TotalRevenue:
		return "Total Revenue (USD mn)"
	case NetIncome:
		return "Net Income (USD mn)"
	case CashFromOps:
		return "Cash from Ops (USD mn)"
	default:
		return ""
	}
}

func (m Metric) String() string {
	switch m {
	case TotalRevenue:
		return "revenue"
	case NetIncome:
		return "net_income"
	case CashFromOps:
		return "cash_from_ops"
	default:
		return "none"
	}
}

// Value selects the metric from an observation
func (m Metric) Value(obs data.Observation) data.Amount {
	switch m {
	case TotalRevenue:
		return obs.TotalRevenue
	case NetIncome:
		return obs.NetIncome
	case CashFromOps:
		return obs.CashFromOps
	default:
		return data.Missing
	}
}

// Companies lists the distinct companies in rows in order of first appearance
func Companies(rows []data.Observation) []string {
	seen := make(map[string]bool)
	companies := make([]string, 0)
	for _, row := range rows {
		if seen[row.Company] {
			continue
		}
		seen[row.Company] = true
		companies = append(companies, row.Company)
	}
	return companies
}

// DetectCompany returns the first company in companies whose name occurs in
// the question, ignoring case. When several names occur the one listed first
// wins.
func DetectCompany(question string, companies []string) (string, bool) {
	lower := strings.ToLower(question)
	for _, company := range companies {
		if company == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(company)) {
			return company, true
		}
	}
	return "", false
}

// DetectMetric maps keywords to a metric. Rules are checked in order so
// "revenue" beats "income" which beats "cash".
func DetectMetric(question string) Metric {
	lower := strings.ToLower(question)
	switch {
	case strings.Contains(lower, "revenue"):
		return TotalRevenue
	case strings.Contains(lower, "net income"), strings.Contains(lower, "income"), strings.Contains(lower, "profit"):
		return NetIncome
	case strings.Contains(lower, "cash"):
		return CashFromOps
	default:
		return NoMetric
	}
}

// DetectYear returns the first 20xx sequence in the question. No range check
// is made here; lookups report years that are not in the table.
func DetectYear(question string) (int, bool) {
	match := yearRegex.FindString(question)
	if match == "" {
		return 0, false
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	return year, true
}

// Query is the parsed form of a question
type Query struct {
	Question string `json:"question"`
	Company  string `json:"company,omitempty"`
	Metric   Metric `json:"-"`
	Year     int    `json:"year,omitempty"`
	Growth   bool   `json:"growth"`
}

// Parse runs the three detectors plus the growth keyword check
func Parse(question string, companies []string) Query {
	q := Query{
		Question: question,
		Metric:   DetectMetric(question),
		Growth:   strings.Contains(strings.ToLower(question), "growth"),
	}
	q.Company, _ = DetectCompany(question, companies)
	q.Year, _ = DetectYear(question)
	return q
}
