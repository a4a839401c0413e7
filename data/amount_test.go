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
package data_test

import (
	"encoding/json"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/tenk/data"
)

var _ = Describe("Amount", func() {
	DescribeTable("coercion",
		func(in any, expected float64, missing bool) {
			a := data.AmountOf(in)
			Expect(a.IsMissing()).To(Equal(missing))
			if !missing {
				Expect(a.Float64()).To(BeNumerically("~", expected, 1e-9))
			}
		},
		Entry("numeric string", "95000", 95000.0, false),
		Entry("padded string", "  12.5 ", 12.5, false),
		Entry("non-numeric string", "n/a", 0.0, true),
		Entry("empty string", "", 0.0, true),
		Entry("float", 3.25, 3.25, false),
		Entry("int", 42, 42.0, false),
		Entry("int64", int64(-7), -7.0, false),
		Entry("nil", nil, 0.0, true),
		Entry("NaN", math.NaN(), 0.0, true),
		Entry("infinite string", "Inf", 0.0, true),
		Entry("unsupported type", struct{}{}, 0.0, true),
	)

	It("reads unparsable CSV cells as missing", func() {
		var a data.Amount
		Expect(a.UnmarshalCSV("—")).To(Succeed())
		Expect(a.IsMissing()).To(BeTrue())
	})

	It("writes missing values as empty CSV cells", func() {
		s, err := data.Missing.MarshalCSV()
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(BeEmpty())

		s, err = data.Amount(1234.5).MarshalCSV()
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(Equal("1234.5"))
	})

	It("writes missing values as JSON null", func() {
		out, err := json.Marshal(map[string]data.Amount{"a": data.Missing, "b": 2.5})
		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(Equal(`{"a":null,"b":2.5}`))

		var back map[string]data.Amount
		Expect(json.Unmarshal(out, &back)).To(Succeed())
		Expect(back["a"].IsMissing()).To(BeTrue())
		Expect(back["b"]).To(Equal(data.Amount(2.5)))
	})

	It("maps SQL NULL to missing and back", func() {
		var a data.Amount
		Expect(a.Scan(nil)).To(Succeed())
		Expect(a.IsMissing()).To(BeTrue())

		v, err := a.Value()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNil())

		Expect(a.Scan(float64(10))).To(Succeed())
		v, err = a.Value()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(float64(10)))
	})
})

var _ = Describe("FormatMoney", func() {
	DescribeTable("formatting",
		func(in data.Amount, expected string) {
			Expect(data.FormatMoney(in)).To(Equal(expected))
		},
		Entry("missing", data.Missing, "N/A"),
		Entry("exactly one thousand", data.Amount(1000), "$1.00B"),
		Entry("just under one thousand", data.Amount(999.99), "$999.99M"),
		Entry("billions", data.Amount(95000), "$95.00B"),
		Entry("small", data.Amount(12.346), "$12.35M"),
		Entry("zero", data.Amount(0), "$0.00M"),
		Entry("negative billions", data.Amount(-1500), "$-1.50B"),
		Entry("infinite", data.Amount(math.Inf(1)), "N/A"),
	)

	It("formats ratios with two decimals", func() {
		Expect(data.FormatRatio(data.Amount(12.3456))).To(Equal("12.35"))
		Expect(data.FormatRatio(data.Missing)).To(Equal("N/A"))
	})
})
