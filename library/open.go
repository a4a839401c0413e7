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
	"errors"
	"strings"
	"time"

	"github.com/penny-vault/tenk/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrNoSource = errors.New("no data source configured")
)

// SourceKind identifies where a session's financials come from
type SourceKind int

const (
	FileSource SourceKind = iota
	URLSource
	DatabaseSource
)

// KindOf classifies a source string by its scheme
func KindOf(source string) SourceKind {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return URLSource
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"), strings.HasPrefix(lower, "pgx5://"):
		return DatabaseSource
	default:
		return FileSource
	}
}

// Open loads source once and returns the session table. Database sources read
// the table named by the db.table setting.
func Open(ctx context.Context, source string) (*Table, error) {
	if source == "" {
		return nil, ErrNoSource
	}

	var (
		records []data.Financial
		modTime time.Time
		err     error
	)

	switch KindOf(source) {
	case URLSource:
		records, modTime, err = LoadURL(ctx, source)
	case DatabaseSource:
		tbl := viper.GetString("db.table")
		if tbl == "" {
			tbl = DefaultTable
		}
		dbURL := strings.Replace(source, "pgx5://", "postgres://", 1)
		records, modTime, err = LoadDB(ctx, dbURL, tbl)
	default:
		records, modTime, err = LoadCSV(source)
	}

	if err != nil {
		return nil, err
	}

	table := New(source, records)
	table.ModTime = modTime

	log.Info().Str("Source", source).Str("SessionID", table.ID.String()).Int("NumRecords", table.Len()).
		Int("MissingCells", table.MissingCells()).Msg("loaded financials")

	return table, nil
}
