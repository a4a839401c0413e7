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
package export

import (
	"fmt"

	"github.com/penny-vault/tenk/data"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Financials"

var xlsxHeaders = []any{
	"Company",
	"Fiscal Year",
	"Total Revenue (USD mn)",
	"Net Income (USD mn)",
	"Cash from Ops (USD mn)",
	"Total Liabilities (USD mn)",
	"Total Assets (USD mn)",
	"Profit Margin (%)",
	"Debt to Assets (%)",
	"Cash Conversion (x)",
	"ROA (%)",
}

// WriteXLSX saves rows to a single-sheet workbook. Missing values are left
// blank.
func WriteXLSX(fn string, rows []data.Observation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return err
		}

		values := []any{
			row.Company,
			row.FiscalYear,
			cellValue(row.TotalRevenue),
			cellValue(row.NetIncome),
			cellValue(row.CashFromOps),
			cellValue(row.TotalLiabilities),
			cellValue(row.TotalAssets),
			cellValue(row.ProfitMarginPct),
			cellValue(row.DebtToAssetsPct),
			cellValue(row.CashConversionX),
			cellValue(row.ROAPct),
		}

		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", idx+2, err)
		}
	}

	return f.SaveAs(fn)
}

func cellValue(a data.Amount) any {
	if a.IsMissing() {
		return nil
	}
	return a.Float64()
}
