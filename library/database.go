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
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/penny-vault/tenk/data"
	"github.com/rs/zerolog/log"
)

// DefaultTable is the table created by the bundled migrations
const DefaultTable = "financials"

// LoadDB reads every financial record from tbl. The most recent updated_at is
// returned as the modification time.
func LoadDB(ctx context.Context, dbURL string, tbl string) ([]data.Financial, time.Time, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer pool.Close()

	ident := pgx.Identifier{tbl}.Sanitize()

	records := []data.Financial{}
	sql := fmt.Sprintf(`SELECT company, fiscal_year, total_revenue, net_income, cash_from_ops,
	total_liabilities, total_assets FROM %s ORDER BY company, fiscal_year`, ident)
	if err := pgxscan.Select(ctx, pool, &records, sql); err != nil {
		log.Error().Err(err).Str("SQL", sql).Msg("select financials failed")
		return nil, time.Time{}, err
	}

	var lastUpdated time.Time
	sql = fmt.Sprintf("SELECT coalesce(max(updated_at), '0001-01-01'::timestamp) FROM %s", ident)
	if err := pool.QueryRow(ctx, sql).Scan(&lastUpdated); err != nil {
		log.Warn().Err(err).Str("SQL", sql).Msg("could not determine last update time")
		lastUpdated = time.Time{}
	}

	return records, lastUpdated, nil
}

// SaveDB upserts records into tbl. Only raw line items are written.
func SaveDB(ctx context.Context, dbURL string, tbl string, records []data.Financial) (int, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	ident := pgx.Identifier{tbl}.Sanitize()

	saved := 0
	for idx := range records {
		if err := records[idx].SaveDB(ctx, ident, conn); err != nil {
			return saved, err
		}
		saved++
	}

	return saved, nil
}
