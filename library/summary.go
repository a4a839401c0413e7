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
	"fmt"
	"strings"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary returns a description of the session table in markdown
func (table *Table) Summary() (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	if _, err := builder.WriteString("# Financials\n"); err != nil {
		return "", err
	}

	if _, err := builder.WriteString("## Details\n\n"); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(fmt.Sprintf("Source: %s\n\n", table.Source)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(fmt.Sprintf("Session: %s\n\n", table.ID)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(p.Sprintf("  * Companies: %d\n", len(table.companies))); err != nil {
		return "", err
	}

	years := table.Years()
	if len(years) > 0 {
		if _, err := builder.WriteString(fmt.Sprintf("  * Fiscal Years: %d - %d\n", years[0], years[len(years)-1])); err != nil {
			return "", err
		}
	}

	if _, err := builder.WriteString(p.Sprintf("  * Total Records: %d\n", table.Len())); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(p.Sprintf("  * Missing Values: %d\n\n", table.MissingCells())); err != nil {
		return "", err
	}

	if table.ModTime.IsZero() {
		if _, err := builder.WriteString("Last Updated: Unknown\n\n"); err != nil {
			return "", err
		}
	} else {
		age := timeago.English.Format(table.ModTime)
		if _, err := builder.WriteString(fmt.Sprintf("Last Updated: %s (%s)\n\n", age, table.ModTime.Local().Format("01/02/2006"))); err != nil {
			return "", err
		}
	}

	if _, err := builder.WriteString("## Companies\n\n"); err != nil {
		return "", err
	}

	for _, company := range table.companies {
		rows := table.CompanyRows(company)
		first, last := rows[0].FiscalYear, rows[0].FiscalYear
		for _, row := range rows {
			first = min(first, row.FiscalYear)
			last = max(last, row.FiscalYear)
		}

		if _, err := builder.WriteString(p.Sprintf("  * %s (%s) [%d records]\n", company, fmt.Sprintf("%d - %d", first, last), len(rows))); err != nil {
			return "", err
		}
	}

	return builder.String(), nil
}
