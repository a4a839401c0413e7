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
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in USD millions or a ratio derived from one. A
// missing value is represented as NaN.
type Amount float64

// Missing is the canonical missing value
var Missing = Amount(math.NaN())

// IsMissing reports whether the amount is absent or could not be parsed
func (a Amount) IsMissing() bool {
	return math.IsNaN(float64(a))
}

// Float64 returns the underlying value, NaN when missing
func (a Amount) Float64() float64 {
	return float64(a)
}

// ParseAmount converts text to an amount. Text that is not a number becomes
// Missing; it is never an error.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return Missing
	}

	return Amount(f)
}

// AmountOf coerces strings, numbers and nil to an amount
func AmountOf(v any) Amount {
	switch t := v.(type) {
	case nil:
		return Missing
	case Amount:
		return t
	case float64:
		return Amount(t)
	case float32:
		return Amount(t)
	case int:
		return Amount(t)
	case int32:
		return Amount(t)
	case int64:
		return Amount(t)
	case string:
		return ParseAmount(t)
	case []byte:
		return ParseAmount(string(t))
	case fmt.Stringer:
		return ParseAmount(t.String())
	default:
		return Missing
	}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller
func (a *Amount) UnmarshalCSV(s string) error {
	*a = ParseAmount(s)
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller; missing values are written as
// empty cells
func (a Amount) MarshalCSV() (string, error) {
	if a.IsMissing() {
		return "", nil
	}
	return strconv.FormatFloat(float64(a), 'f', -1, 64), nil
}

// MarshalJSON writes missing values as null
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsMissing() || math.IsInf(float64(a), 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts numbers, numeric strings and null
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*a = Missing
		return nil
	}
	*a = ParseAmount(s)
	return nil
}

// Scan implements sql.Scanner so NULL columns become Missing
func (a *Amount) Scan(src any) error {
	*a = AmountOf(src)
	return nil
}

// Value implements driver.Valuer so Missing is stored as NULL
func (a Amount) Value() (driver.Value, error) {
	if a.IsMissing() {
		return nil, nil
	}
	return float64(a), nil
}
