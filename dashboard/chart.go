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
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/penny-vault/tenk/data"
)

// Trend is one metric of one company over its fiscal years. Years with a
// missing value are left out.
type Trend struct {
	Company string    `json:"company"`
	Title   string    `json:"title"`
	YLabel  string    `json:"y_label"`
	Years   []int     `json:"years"`
	Values  []float64 `json:"values"`
}

type trendDef struct {
	title  string
	ylabel string
	value  func(data.Observation) data.Amount
}

var trendSeries = []trendDef{
	{"Revenue Trend", "Revenue (USD mn)", func(o data.Observation) data.Amount { return o.TotalRevenue }},
	{"Net Income Trend", "Net Income (USD mn)", func(o data.Observation) data.Amount { return o.NetIncome }},
	{"Profit Margin (%) Trend", "Profit Margin (%)", func(o data.Observation) data.Amount { return o.ProfitMarginPct }},
}

// Trends returns the revenue, net income and profit margin series for company
func Trends(company string, rows []data.Observation) []Trend {
	companyRows := make([]data.Observation, 0)
	for _, row := range rows {
		if row.Company == company {
			companyRows = append(companyRows, row)
		}
	}

	sort.SliceStable(companyRows, func(i, j int) bool {
		return companyRows[i].FiscalYear < companyRows[j].FiscalYear
	})

	trends := make([]Trend, 0, len(trendSeries))
	for _, series := range trendSeries {
		trend := Trend{
			Company: company,
			Title:   fmt.Sprintf("%s - %s", company, series.title),
			YLabel:  series.ylabel,
			Years:   make([]int, 0, len(companyRows)),
			Values:  make([]float64, 0, len(companyRows)),
		}

		for _, row := range companyRows {
			v := series.value(row)
			if v.IsMissing() {
				continue
			}
			trend.Years = append(trend.Years, row.FiscalYear)
			trend.Values = append(trend.Values, v.Float64())
		}

		trends = append(trends, trend)
	}

	return trends
}

// RenderTrend draws a trend as an ASCII line chart
func RenderTrend(trend Trend) string {
	if len(trend.Values) == 0 {
		return fmt.Sprintf("%s: no data\n", trend.Title)
	}

	caption := fmt.Sprintf("%s, %s (%d-%d)", trend.Title, trend.YLabel, trend.Years[0], trend.Years[len(trend.Years)-1])
	if len(trend.Values) == 1 {
		return fmt.Sprintf("%s: %.2f in %d\n", caption, trend.Values[0], trend.Years[0])
	}

	graph := asciigraph.Plot(trend.Values,
		asciigraph.Height(8),
		asciigraph.Width(max(len(trend.Values)*8, 24)),
		asciigraph.Caption(caption),
	)

	return graph + "\n"
}

// RenderTrends draws every trend for every company in companies
func RenderTrends(companies []string, rows []data.Observation) string {
	builder := strings.Builder{}
	for _, company := range companies {
		for _, trend := range Trends(company, rows) {
			builder.WriteString(RenderTrend(trend))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
