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
package dashboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/tenk/dashboard"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/ratio"
)

var _ = Describe("Dashboard", func() {
	var rows []data.Observation

	BeforeEach(func() {
		rows = ratio.Compute([]data.Financial{
			{Company: "Tesla", FiscalYear: 2024, TotalRevenue: 97690, NetIncome: 7091, CashFromOps: 14923, TotalLiabilities: 48390, TotalAssets: 122070},
			{Company: "Tesla", FiscalYear: 2022, TotalRevenue: 81462, NetIncome: data.Missing, CashFromOps: 14724, TotalLiabilities: 36440, TotalAssets: 82338},
			{Company: "Tesla", FiscalYear: 2023, TotalRevenue: 96773, NetIncome: 14997, CashFromOps: 13256, TotalLiabilities: 43009, TotalAssets: 106618},
			{Company: "Apple", FiscalYear: 2024, TotalRevenue: 391036, NetIncome: 93736, CashFromOps: 118254, TotalLiabilities: 308030, TotalAssets: 364980},
		})
	})

	It("formats view rows", func() {
		row := dashboard.ViewRow(rows[0])
		Expect(row).To(HaveLen(len(dashboard.ViewColumns)))
		Expect(row[0]).To(Equal("Tesla"))
		Expect(row[1]).To(Equal("2024"))
		Expect(row[2]).To(Equal("$97.69B"))
		Expect(row[7]).To(Equal("7.26"))
	})

	It("formats summary rows with N/A for missing ratios", func() {
		row := dashboard.SummaryRow(rows[1])
		Expect(row).To(HaveLen(len(dashboard.SummaryColumns)))
		Expect(row[3]).To(Equal("N/A"))
		Expect(row[4]).To(Equal("N/A"))
	})

	It("renders tables containing every row", func() {
		out := dashboard.RenderTable(rows)
		Expect(out).To(ContainSubstring("Profit Margin (%)"))
		Expect(out).To(ContainSubstring("Apple"))
		Expect(out).To(ContainSubstring("$391.04B"))

		out = dashboard.RenderSummary(rows[:1])
		Expect(out).To(ContainSubstring("Cash Conversion (x)"))
		Expect(out).To(ContainSubstring("Tesla"))
	})

	It("builds three trends sorted by year and skips missing points", func() {
		trends := dashboard.Trends("Tesla", rows)
		Expect(trends).To(HaveLen(3))
		Expect(trends[0].Title).To(Equal("Tesla - Revenue Trend"))
		Expect(trends[0].Years).To(Equal([]int{2022, 2023, 2024}))
		Expect(trends[0].Values).To(Equal([]float64{81462, 96773, 97690}))
		Expect(trends[1].Years).To(Equal([]int{2023, 2024}))
		Expect(trends[2].YLabel).To(Equal("Profit Margin (%)"))
	})

	It("renders charts with a caption", func() {
		out := dashboard.RenderTrends([]string{"Tesla"}, rows)
		Expect(out).To(ContainSubstring("Tesla - Revenue Trend, Revenue (USD mn) (2022-2024)"))
		Expect(out).To(ContainSubstring("Tesla - Net Income Trend"))
	})

	It("handles companies without data", func() {
		out := dashboard.RenderTrends([]string{"Nobody"}, rows)
		Expect(out).To(ContainSubstring("Nobody - Revenue Trend: no data"))
	})

	It("prints single points instead of plotting", func() {
		out := dashboard.RenderTrend(dashboard.Trends("Apple", rows)[0])
		Expect(out).To(ContainSubstring("391036.00 in 2024"))
	})
})
