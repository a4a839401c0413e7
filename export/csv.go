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

// Package export writes snapshots of a filtered data view.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/library"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
)

// Format is an export file format
type Format string

const (
	CSV     Format = "csv"
	XLSX    Format = "xlsx"
	Parquet Format = "parquet"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, XLSX, Parquet:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FileName builds the default snapshot name for a view filtered to company
// and year. Empty company and zero year are left out.
func FileName(company string, year int, format Format) string {
	parts := []string{"gfc filtered data"}
	if company != "" && company != library.AllCompanies {
		parts = append(parts, company)
	}
	if year != 0 {
		parts = append(parts, strconv.Itoa(year))
	}
	return fmt.Sprintf("%s.%s", slug.Make(strings.Join(parts, " ")), format)
}

// WriteCSV writes rows with the seven source columns followed by the derived
// ratios. Missing values are written as empty cells.
func WriteCSV(w io.Writer, rows []data.Observation) error {
	if rows == nil {
		rows = []data.Observation{}
	}
	return gocsv.Marshal(&rows, w)
}
