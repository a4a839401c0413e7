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
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Financial is one company's extracted 10-K line items for a single fiscal
// year. All amounts are in USD millions.
type Financial struct {
	Company          string `csv:"Company" json:"company" db:"company"`
	FiscalYear       int    `csv:"Fiscal Year" json:"fiscal_year" db:"fiscal_year"`
	TotalRevenue     Amount `csv:"Total Revenue (USD mn)" json:"total_revenue" db:"total_revenue"`
	NetIncome        Amount `csv:"Net Income (USD mn)" json:"net_income" db:"net_income"`
	CashFromOps      Amount `csv:"Cash from Ops (USD mn)" json:"cash_from_ops" db:"cash_from_ops"`
	TotalLiabilities Amount `csv:"Total Liabilities (USD mn)" json:"total_liabilities" db:"total_liabilities"`
	TotalAssets      Amount `csv:"Total Assets (USD mn)" json:"total_assets" db:"total_assets"`
}

// Observation is a Financial record with its derived ratios attached
type Observation struct {
	Financial

	// ProfitMarginPct is net income as a percentage of total revenue
	ProfitMarginPct Amount `csv:"Profit Margin (%)" json:"profit_margin_pct"`

	// DebtToAssetsPct is total liabilities as a percentage of total assets
	DebtToAssetsPct Amount `csv:"Debt to Assets (%)" json:"debt_to_assets_pct"`

	// CashConversionX is cash from operations divided by net income
	CashConversionX Amount `csv:"Cash Conversion (x)" json:"cash_conversion_x"`

	// ROAPct is net income as a percentage of total assets
	ROAPct Amount `csv:"ROA (%)" json:"roa_pct"`
}

// SaveDB upserts the raw line items into tbl, which must already be quoted.
// Derived ratios are never stored.
func (financial *Financial) SaveDB(ctx context.Context, tbl string, dbConn *pgxpool.Conn) error {
	if financial.Company == "" {
		return nil
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return err
	}

	sql := fmt.Sprintf(`INSERT INTO %[1]s (
		"company",
		"fiscal_year",
		"total_revenue",
		"net_income",
		"cash_from_ops",
		"total_liabilities",
		"total_assets"
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7
	) ON CONFLICT (company, fiscal_year) DO UPDATE SET
		total_revenue = EXCLUDED.total_revenue,
		net_income = EXCLUDED.net_income,
		cash_from_ops = EXCLUDED.cash_from_ops,
		total_liabilities = EXCLUDED.total_liabilities,
		total_assets = EXCLUDED.total_assets,
		updated_at = now()`, tbl)

	_, err = tx.Exec(ctx, sql,
		financial.Company,
		financial.FiscalYear,
		financial.TotalRevenue,
		financial.NetIncome,
		financial.CashFromOps,
		financial.TotalLiabilities,
		financial.TotalAssets,
	)

	if err != nil {
		log.Error().Err(err).Str("SQL", sql).Object("Financial", financial).Msg("save financial to DB failed")
		if err2 := tx.Rollback(ctx); err2 != nil {
			log.Error().Err(err2).Msg("error rolling back tx")
		}
		return err
	}

	return tx.Commit(ctx)
}

func (financial *Financial) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Company", financial.Company)
	e.Int("FiscalYear", financial.FiscalYear)
}
