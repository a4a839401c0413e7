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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/penny-vault/tenk/data"
)

var (
	ErrMissingColumns = errors.New("required columns missing")
)

// RequiredColumns are the header names every financials CSV must carry
var RequiredColumns = []string{
	"Company",
	"Fiscal Year",
	"Total Revenue (USD mn)",
	"Net Income (USD mn)",
	"Cash from Ops (USD mn)",
	"Total Liabilities (USD mn)",
	"Total Assets (USD mn)",
}

// ParseCSV decodes CSV bytes into financial records. Amount cells that are not
// numbers become missing values; a fiscal year that is not an integer or a
// missing required column is an error.
func ParseCSV(csvData []byte) ([]data.Financial, error) {
	csvData = bytes.TrimPrefix(csvData, []byte("\xef\xbb\xbf"))

	header, err := gocsv.DefaultCSVReader(bytes.NewReader(csvData)).Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	missing := make([]string, 0)
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	records := []data.Financial{}
	if err := gocsv.UnmarshalBytes(csvData, &records); err != nil {
		return nil, fmt.Errorf("decode financials: %w", err)
	}

	for idx := range records {
		records[idx].Company = strings.TrimSpace(records[idx].Company)
	}

	return records, nil
}

// LoadCSV reads a financials CSV from disk and returns its records along with
// the file's modification time
func LoadCSV(fn string) ([]data.Financial, time.Time, error) {
	info, err := os.Stat(fn)
	if err != nil {
		return nil, time.Time{}, err
	}

	csvData, err := os.ReadFile(fn)
	if err != nil {
		return nil, time.Time{}, err
	}

	records, err := ParseCSV(csvData)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%s: %w", fn, err)
	}

	return records, info.ModTime(), nil
}
