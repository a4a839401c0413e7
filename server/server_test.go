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
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/library"
	"github.com/penny-vault/tenk/prompt"
	"github.com/penny-vault/tenk/server"
)

var _ = Describe("Server", func() {
	var handler http.Handler

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	BeforeEach(func() {
		table := library.New("fixture", []data.Financial{
			{Company: "Tesla", FiscalYear: 2023, TotalRevenue: 95000, NetIncome: 14997, CashFromOps: 13256, TotalLiabilities: 43009, TotalAssets: 106618},
			{Company: "Tesla", FiscalYear: 2024, TotalRevenue: 97690, NetIncome: data.Missing, CashFromOps: 14923, TotalLiabilities: 48390, TotalAssets: 122070},
			{Company: "Apple", FiscalYear: 2024, TotalRevenue: 391036, NetIncome: 93736, CashFromOps: 118254, TotalLiabilities: 308030, TotalAssets: 364980},
		})
		handler = server.New(table, nil).Router()
	})

	It("reports health", func() {
		rec := get("/healthz")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("ok"))
	})

	It("reports the build version", func() {
		rec := get("/version")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"name":"tenk"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"version":"dev"`))
	})

	It("lists companies and years", func() {
		rec := get("/api/companies")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"companies":["Tesla","Apple"],"years":[2023,2024]}`))
	})

	It("filters records and writes missing values as null", func() {
		rec := get("/api/records?company=Tesla&year=2024")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var rows []map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &rows)).To(Succeed())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0]["company"]).To(Equal("Tesla"))
		Expect(rows[0]["net_income"]).To(BeNil())
		Expect(rows[0]["profit_margin_pct"]).To(BeNil())
	})

	It("rejects a malformed year", func() {
		rec := get("/api/records?year=twenty")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("invalid year"))
	})

	It("returns the latest summary", func() {
		var rows []map[string]any
		Expect(json.Unmarshal(get("/api/summary").Body.Bytes(), &rows)).To(Succeed())
		Expect(rows).To(HaveLen(2))
		Expect(rows[0]["company"]).To(Equal("Apple"))
		Expect(rows[1]["fiscal_year"]).To(BeNumerically("==", 2024))
	})

	It("answers questions", func() {
		rec := get("/api/ask?q=What+was+Tesla+revenue+in+2023%3F")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["company"]).To(Equal("Tesla"))
		Expect(resp["metric"]).To(Equal("revenue"))
		Expect(resp["year"]).To(BeNumerically("==", 2023))
		Expect(resp["answer"]).To(ContainSubstring("$95.00B"))
	})

	It("builds a prompt from the detected company's rows", func() {
		var resp map[string]any
		Expect(json.Unmarshal(get("/api/prompt?q=Apple+revenue&complete=true").Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["prompt"]).To(ContainSubstring("Apple 2024: Revenue 391036"))
		Expect(resp["prompt"]).ToNot(ContainSubstring("Tesla 2023"))
		Expect(resp["completion"]).To(Equal(prompt.StubMessage))
	})

	It("returns trends for a company", func() {
		rec := get("/api/trends/Tesla")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var trends []map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &trends)).To(Succeed())
		Expect(trends).To(HaveLen(3))
		Expect(trends[0]["title"]).To(Equal("Tesla - Revenue Trend"))

		Expect(get("/api/trends/Nobody").Code).To(Equal(http.StatusNotFound))
	})

	It("exports the filtered view as CSV", func() {
		rec := get("/api/export.csv?company=Apple")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("gfc-filtered-data-apple.csv"))

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[1]).To(HavePrefix("Apple,2024,391036"))
	})
})
