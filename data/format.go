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
package data

import (
	"fmt"
	"math"
)

// FormatMoney renders an amount stored in USD millions for display. Values of
// at least one thousand million are shown in billions.
func FormatMoney(a Amount) string {
	if a.IsMissing() || math.IsInf(float64(a), 0) {
		return "N/A"
	}

	v := float64(a)
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("$%.2fB", v/1000)
	}

	return fmt.Sprintf("$%.2fM", v)
}

// FormatRatio renders a derived ratio with two decimals, N/A when missing
func FormatRatio(a Amount) string {
	if a.IsMissing() || math.IsInf(float64(a), 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", float64(a))
}
