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
	"github.com/penny-vault/tenk/data"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type parquetRow struct {
	Company          string   `parquet:"name=company, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	FiscalYear       int32    `parquet:"name=fiscal_year, type=INT32"`
	TotalRevenue     *float64 `parquet:"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"`
	NetIncome        *float64 `parquet:"name=net_income, type=DOUBLE, repetitiontype=OPTIONAL"`
	CashFromOps      *float64 `parquet:"name=cash_from_ops, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalLiabilities *float64 `parquet:"name=total_liabilities, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalAssets      *float64 `parquet:"name=total_assets, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProfitMarginPct  *float64 `parquet:"name=profit_margin_pct, type=DOUBLE, repetitiontype=OPTIONAL"`
	DebtToAssetsPct  *float64 `parquet:"name=debt_to_assets_pct, type=DOUBLE, repetitiontype=OPTIONAL"`
	CashConversionX  *float64 `parquet:"name=cash_conversion_x, type=DOUBLE, repetitiontype=OPTIONAL"`
	ROAPct           *float64 `parquet:"name=roa_pct, type=DOUBLE, repetitiontype=OPTIONAL"`
}

func optional(a data.Amount) *float64 {
	if a.IsMissing() {
		return nil
	}
	v := a.Float64()
	return &v
}

// WriteParquet saves rows to a snappy-compressed parquet file. Missing values
// are stored as nulls.
func WriteParquet(fn string, rows []data.Observation) error {
	fw, err := local.NewLocalFileWriter(fn)
	if err != nil {
		return err
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 4)
	if err != nil {
		return err
	}

	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		rec := parquetRow{
			Company:          row.Company,
			FiscalYear:       int32(row.FiscalYear),
			TotalRevenue:     optional(row.TotalRevenue),
			NetIncome:        optional(row.NetIncome),
			CashFromOps:      optional(row.CashFromOps),
			TotalLiabilities: optional(row.TotalLiabilities),
			TotalAssets:      optional(row.TotalAssets),
			ProfitMarginPct:  optional(row.ProfitMarginPct),
			DebtToAssetsPct:  optional(row.DebtToAssetsPct),
			CashConversionX:  optional(row.CashConversionX),
			ROAPct:           optional(row.ROAPct),
		}

		if err := pw.Write(rec); err != nil {
			return err
		}
	}

	return pw.WriteStop()
}
