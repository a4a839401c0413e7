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

// Package ratio derives profitability and leverage ratios from extracted
// 10-K line items. Every function here is total: a ratio that cannot be
// computed is reported as data.Missing.
package ratio

import (
	"math"

	"github.com/penny-vault/tenk/data"
)

// Divide returns num / den. The result is missing when either operand is
// missing or the denominator is zero.
func Divide(num, den data.Amount) data.Amount {
	if num.IsMissing() || den.IsMissing() || den == 0 {
		return data.Missing
	}

	q := float64(num) / float64(den)
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return data.Missing
	}

	return data.Amount(q)
}

// Percent returns num / den * 100 with the same missing rules as Divide
func Percent(num, den data.Amount) data.Amount {
	q := Divide(num, den)
	if q.IsMissing() {
		return q
	}
	return q * 100
}

// Derive attaches the four derived ratios to a copy of financial
func Derive(financial data.Financial) data.Observation {
	return data.Observation{
		Financial:       financial,
		ProfitMarginPct: Percent(financial.NetIncome, financial.TotalRevenue),
		DebtToAssetsPct: Percent(financial.TotalLiabilities, financial.TotalAssets),
		CashConversionX: Divide(financial.CashFromOps, financial.NetIncome),
		ROAPct:          Percent(financial.NetIncome, financial.TotalAssets),
	}
}

// Compute returns a new slice with one observation per record, in the same
// order. The input is not modified.
func Compute(records []data.Financial) []data.Observation {
	observations := make([]data.Observation, len(records))
	for idx, record := range records {
		observations[idx] = Derive(record)
	}
	return observations
}
