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

// Package dashboard renders the session table for a terminal: the filtered
// data view, the latest-year summary and per-company trend charts.
package dashboard

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/penny-vault/tenk/data"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// ViewColumns are the headers of the data view
var ViewColumns = []string{
	"Company",
	"Fiscal Year",
	"Total Revenue",
	"Net Income",
	"Cash from Ops",
	"Total Liabilities",
	"Total Assets",
	"Profit Margin (%)",
	"Debt to Assets (%)",
	"Cash Conversion (x)",
	"ROA (%)",
}

// SummaryColumns are the headers of the latest-year summary
var SummaryColumns = []string{
	"Company",
	"Fiscal Year",
	"Total Revenue",
	"Net Income",
	"Profit Margin (%)",
	"Debt to Assets (%)",
	"Cash Conversion (x)",
}

// ViewRow formats one observation for the data view
func ViewRow(obs data.Observation) []string {
	return []string{
		obs.Company,
		strconv.Itoa(obs.FiscalYear),
		data.FormatMoney(obs.TotalRevenue),
		data.FormatMoney(obs.NetIncome),
		data.FormatMoney(obs.CashFromOps),
		data.FormatMoney(obs.TotalLiabilities),
		data.FormatMoney(obs.TotalAssets),
		data.FormatRatio(obs.ProfitMarginPct),
		data.FormatRatio(obs.DebtToAssetsPct),
		data.FormatRatio(obs.CashConversionX),
		data.FormatRatio(obs.ROAPct),
	}
}

// SummaryRow formats one observation for the latest-year summary
func SummaryRow(obs data.Observation) []string {
	return []string{
		obs.Company,
		strconv.Itoa(obs.FiscalYear),
		data.FormatMoney(obs.TotalRevenue),
		data.FormatMoney(obs.NetIncome),
		data.FormatRatio(obs.ProfitMarginPct),
		data.FormatRatio(obs.DebtToAssetsPct),
		data.FormatRatio(obs.CashConversionX),
	}
}

// RenderTable draws the data view
func RenderTable(rows []data.Observation) string {
	cells := make([][]string, len(rows))
	for idx, row := range rows {
		cells[idx] = ViewRow(row)
	}
	return render(ViewColumns, cells)
}

// RenderSummary draws the latest-year summary
func RenderSummary(rows []data.Observation) string {
	cells := make([][]string, len(rows))
	for idx, row := range rows {
		cells[idx] = SummaryRow(row)
	}
	return render(SummaryColumns, cells)
}

func render(headers []string, cells [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}
