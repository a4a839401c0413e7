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
package library

import (
	"slices"
	"sort"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/google/uuid"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/ratio"
)

// AllCompanies selects every company in Filter
const AllCompanies = "All"

// Table is the immutable set of financials loaded for one session. Ratios are
// computed once when the table is built; every accessor returns a copy so
// callers cannot change what other readers see.
type Table struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time

	// ModTime is when the source was last modified, zero when unknown
	ModTime time.Time

	rows      []data.Observation
	companies []string
	index     *haxmap.Map[string, []int]
}

// New computes ratios for records and indexes them by company
func New(source string, records []data.Financial) *Table {
	table := &Table{
		ID:        uuid.New(),
		Source:    source,
		LoadedAt:  time.Now(),
		rows:      ratio.Compute(records),
		companies: make([]string, 0),
		index:     haxmap.New[string, []int](),
	}

	for idx, row := range table.rows {
		positions, ok := table.index.Get(row.Company)
		if !ok {
			table.companies = append(table.companies, row.Company)
		}
		table.index.Set(row.Company, append(positions, idx))
	}

	return table
}

// Len returns the number of records in the table
func (table *Table) Len() int {
	return len(table.rows)
}

// Rows returns a copy of every observation in load order
func (table *Table) Rows() []data.Observation {
	return slices.Clone(table.rows)
}

// Companies returns the distinct companies in order of first appearance
func (table *Table) Companies() []string {
	return slices.Clone(table.companies)
}

// Years returns the distinct fiscal years in ascending order
func (table *Table) Years() []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, row := range table.rows {
		if !seen[row.FiscalYear] {
			seen[row.FiscalYear] = true
			years = append(years, row.FiscalYear)
		}
	}
	sort.Ints(years)
	return years
}

// CompanyRows returns the observations for company in load order
func (table *Table) CompanyRows(company string) []data.Observation {
	positions, ok := table.index.Get(company)
	if !ok {
		return []data.Observation{}
	}

	rows := make([]data.Observation, len(positions))
	for idx, pos := range positions {
		rows[idx] = table.rows[pos]
	}
	return rows
}

// Filter returns the observations matching company and year. An empty
// company (or "All") matches every company and a zero year every year.
func (table *Table) Filter(company string, year int) []data.Observation {
	var rows []data.Observation
	if company == "" || company == AllCompanies {
		rows = table.Rows()
	} else {
		rows = table.CompanyRows(company)
	}

	if year == 0 {
		return rows
	}

	filtered := make([]data.Observation, 0, len(rows))
	for _, row := range rows {
		if row.FiscalYear == year {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Latest returns the most recent fiscal year of each company sorted by
// company name. When a company repeats a fiscal year the later row wins.
func (table *Table) Latest() []data.Observation {
	latest := make([]data.Observation, 0, len(table.companies))
	for _, company := range table.companies {
		rows := table.CompanyRows(company)
		best := rows[0]
		for _, row := range rows[1:] {
			if row.FiscalYear >= best.FiscalYear {
				best = row
			}
		}
		latest = append(latest, best)
	}

	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].Company < latest[j].Company
	})

	return latest
}

// MissingCells counts raw line items that were absent or failed to parse
func (table *Table) MissingCells() int {
	count := 0
	for _, row := range table.rows {
		for _, v := range []data.Amount{row.TotalRevenue, row.NetIncome, row.CashFromOps, row.TotalLiabilities, row.TotalAssets} {
			if v.IsMissing() {
				count++
			}
		}
	}
	return count
}
