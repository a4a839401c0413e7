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
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/ratio"
)

// Growth is one fiscal year of revenue and its change from the prior year
type Growth struct {
	FiscalYear int         `json:"fiscal_year"`
	Revenue    data.Amount `json:"revenue"`
	// Percent is missing for the first year and whenever either year's
	// revenue is missing or the prior year is zero
	Percent data.Amount `json:"percent"`
}

// CompanyRows returns the rows for company sorted by fiscal year ascending.
// Rows sharing a fiscal year keep their table order.
func CompanyRows(company string, rows []data.Observation) []data.Observation {
	out := make([]data.Observation, 0)
	for _, row := range rows {
		if row.Company == company {
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FiscalYear < out[j].FiscalYear
	})

	return out
}

// RevenueGrowth computes year-over-year revenue change for company. The
// result has one entry per row of the company.
func RevenueGrowth(company string, rows []data.Observation) []Growth {
	companyRows := CompanyRows(company, rows)
	growth := make([]Growth, len(companyRows))

	for idx, row := range companyRows {
		growth[idx] = Growth{
			FiscalYear: row.FiscalYear,
			Revenue:    row.TotalRevenue,
			Percent:    data.Missing,
		}

		if idx == 0 {
			continue
		}

		change := ratio.Divide(row.TotalRevenue, companyRows[idx-1].TotalRevenue)
		if !change.IsMissing() {
			growth[idx].Percent = (change - 1) * 100
		}
	}

	return growth
}

// FormatPercent rounds to two decimals and prints the shortest form that
// keeps at least one decimal, e.g. 50.0 or 33.33
func FormatPercent(a data.Amount) string {
	if a.IsMissing() || math.IsInf(a.Float64(), 0) {
		return "N/A"
	}

	rounded := math.Round(a.Float64()*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
