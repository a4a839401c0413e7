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
package query_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/query"
	"github.com/penny-vault/tenk/ratio"
)

func fixture() []data.Observation {
	return ratio.Compute([]data.Financial{
		{Company: "Microsoft", FiscalYear: 2024, TotalRevenue: 245122, NetIncome: 88136, CashFromOps: 118548, TotalLiabilities: 243686, TotalAssets: 512163},
		{Company: "Microsoft", FiscalYear: 2022, TotalRevenue: 198270, NetIncome: 72738, CashFromOps: 89035, TotalLiabilities: 198298, TotalAssets: 364840},
		{Company: "Microsoft", FiscalYear: 2023, TotalRevenue: 211915, NetIncome: 72361, CashFromOps: 87582, TotalLiabilities: 205753, TotalAssets: 411976},
		{Company: "Apple", FiscalYear: 2023, TotalRevenue: 383285, NetIncome: 96995, CashFromOps: 110543, TotalLiabilities: 290437, TotalAssets: 352583},
		{Company: "Apple", FiscalYear: 2024, TotalRevenue: 391035, NetIncome: 93736, CashFromOps: 118254, TotalLiabilities: 308030, TotalAssets: 364980},
		{Company: "Tesla", FiscalYear: 2023, TotalRevenue: 95000, NetIncome: 14997, CashFromOps: data.Missing, TotalLiabilities: 43009, TotalAssets: 106618},
		{Company: "Tesla", FiscalYear: 2024, TotalRevenue: 97690, NetIncome: 7091, CashFromOps: 14923, TotalLiabilities: 48390, TotalAssets: 122070},
	})
}

var _ = Describe("Detectors", func() {
	companies := []string{"Microsoft", "Apple", "Tesla"}

	It("matches companies case-insensitively", func() {
		company, ok := query.DetectCompany("how did TESLA do?", companies)
		Expect(ok).To(BeTrue())
		Expect(company).To(Equal("Tesla"))
	})

	It("prefers the first listed company when several match", func() {
		company, ok := query.DetectCompany("apple vs microsoft", companies)
		Expect(ok).To(BeTrue())
		Expect(company).To(Equal("Microsoft"))
	})

	It("reports no company", func() {
		_, ok := query.DetectCompany("What is the weather?", companies)
		Expect(ok).To(BeFalse())
	})

	DescribeTable("metrics",
		func(question string, expected query.Metric) {
			Expect(query.DetectMetric(question)).To(Equal(expected))
		},
		Entry("revenue", "Apple revenue", query.TotalRevenue),
		Entry("net income", "Apple net income", query.NetIncome),
		Entry("income", "Apple income", query.NetIncome),
		Entry("profit", "Apple profit", query.NetIncome),
		Entry("cash", "Apple cash flow", query.CashFromOps),
		Entry("revenue wins over profit", "Apple profit and revenue", query.TotalRevenue),
		Entry("income wins over cash", "Apple cash and income", query.NetIncome),
		Entry("none", "Apple headcount", query.NoMetric),
	)

	DescribeTable("years",
		func(question string, expected int, found bool) {
			year, ok := query.DetectYear(question)
			Expect(ok).To(Equal(found))
			Expect(year).To(Equal(expected))
		},
		Entry("plain", "Tesla revenue in 2023?", 2023, true),
		Entry("first wins", "2022 or 2024", 2022, true),
		Entry("far future is not rejected", "Tesla revenue 2099", 2099, true),
		Entry("19xx is ignored", "Tesla revenue 1999", 0, false),
		Entry("none", "Tesla revenue", 0, false),
	)

	It("lists companies in order of first appearance", func() {
		Expect(query.Companies(fixture())).To(Equal([]string{"Microsoft", "Apple", "Tesla"}))
	})
})

var _ = Describe("Growth", func() {
	It("reports N/A for the first year and the percentage change after", func() {
		rows := ratio.Compute([]data.Financial{
			{Company: "Acme", FiscalYear: 2021, TotalRevenue: 100},
			{Company: "Acme", FiscalYear: 2022, TotalRevenue: 150},
		})

		growth := query.RevenueGrowth("Acme", rows)
		Expect(growth).To(HaveLen(2))
		Expect(growth[0].Percent.IsMissing()).To(BeTrue())
		Expect(query.FormatPercent(growth[0].Percent)).To(Equal("N/A"))
		Expect(query.FormatPercent(growth[1].Percent)).To(Equal("50.0"))
	})

	It("has one entry per company row sorted by year", func() {
		growth := query.RevenueGrowth("Microsoft", fixture())
		Expect(growth).To(HaveLen(3))
		Expect(growth[0].FiscalYear).To(Equal(2022))
		Expect(growth[1].FiscalYear).To(Equal(2023))
		Expect(growth[2].FiscalYear).To(Equal(2024))
	})

	It("is missing when the prior year is zero", func() {
		rows := ratio.Compute([]data.Financial{
			{Company: "Acme", FiscalYear: 2021, TotalRevenue: 0},
			{Company: "Acme", FiscalYear: 2022, TotalRevenue: 10},
		})
		Expect(query.RevenueGrowth("Acme", rows)[1].Percent.IsMissing()).To(BeTrue())
	})

	DescribeTable("FormatPercent",
		func(in data.Amount, expected string) {
			Expect(query.FormatPercent(in)).To(Equal(expected))
		},
		Entry("whole", data.Amount(50), "50.0"),
		Entry("two decimals", data.Amount(100.0/3.0), "33.33"),
		Entry("one decimal", data.Amount(7.1), "7.1"),
		Entry("negative", data.Amount(-12.5), "-12.5"),
		Entry("missing", data.Missing, "N/A"),
	)
})

var _ = Describe("Answer", func() {
	var rows []data.Observation

	BeforeEach(func() {
		rows = fixture()
	})

	It("waits for input on an empty question", func() {
		Expect(query.Answer("", rows)).To(Equal(query.WaitingMessage))
		Expect(query.Answer("   \t", rows)).To(Equal(query.WaitingMessage))
	})

	It("asks for a company when none is recognized", func() {
		expected := "Please include a company name: Microsoft, Apple, or Tesla."
		Expect(query.Answer("What is the weather?", rows)).To(Equal(expected))
		Expect(query.Answer("revenue growth in 2023", rows)).To(Equal(expected))
	})

	It("answers a metric for a specific year", func() {
		answer := query.Answer("What was Tesla revenue in 2023?", rows)
		Expect(answer).To(Equal("Tesla 2023 — Total Revenue (USD mn): $95.00B"))
	})

	It("answers the latest year when no year is given", func() {
		answer := query.Answer("Apple net income?", rows)
		Expect(answer).To(Equal("Apple 2024 — Net Income (USD mn): $93.74B"))
	})

	It("uses the maximum fiscal year regardless of table order", func() {
		answer := query.Answer("microsoft cash", rows)
		Expect(answer).To(HavePrefix("Microsoft 2024 — Cash from Ops (USD mn):"))
	})

	It("reports missing values as N/A", func() {
		Expect(query.Answer("Tesla cash in 2023", rows)).To(Equal("Tesla 2023 — Cash from Ops (USD mn): N/A"))
	})

	It("lists available years when the requested year is absent", func() {
		answer := query.Answer("Tesla revenue in 2019?", rows)
		Expect(answer).To(Equal("No data for Tesla in 2019. Available: 2023, 2024"))
		Expect(answer).ToNot(ContainSubstring("2019,"))
	})

	It("answers revenue growth with one line per year", func() {
		answer := query.Answer("Show Microsoft revenue growth", rows)
		lines := strings.Split(answer, "\n")
		Expect(lines).To(HaveLen(3))
		for idx, year := range []string{"2022", "2023", "2024"} {
			Expect(lines[idx]).To(HavePrefix("Microsoft " + year + " — Revenue"))
		}
		Expect(lines[0]).To(HaveSuffix("YoY growth: N/A%"))
		Expect(lines[1]).To(HaveSuffix("YoY growth: 6.88%"))
		Expect(lines[2]).To(Equal("Microsoft 2024 — Revenue $245.12B, YoY growth: 15.67%"))
	})

	It("ignores metric and year for growth questions", func() {
		answer := query.Answer("Tesla net income growth 2023", rows)
		Expect(strings.Split(answer, "\n")).To(HaveLen(2))
		Expect(answer).To(HavePrefix("Tesla 2023 — Revenue $95.00B"))
	})

	It("falls back when no metric is recognized", func() {
		Expect(query.Answer("Tell me about Apple", rows)).To(Equal(query.FallbackMessage))
	})

	It("never panics on an empty table", func() {
		Expect(query.Answer("Tesla revenue", nil)).To(Equal("Please include a company name."))
	})

	DescribeTable("company prompt",
		func(companies []string, expected string) {
			Expect(query.CompanyPrompt(companies)).To(Equal(expected))
		},
		Entry("one", []string{"Tesla"}, "Please include a company name: Tesla."),
		Entry("two", []string{"Apple", "Tesla"}, "Please include a company name: Apple or Tesla."),
	)
})
