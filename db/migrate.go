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
package db

import (
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationURL rewrites a postgres:// DSN to the pgx5:// scheme understood by
// the migrate driver
func MigrationURL(dbURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dbURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(dbURL, prefix)
		}
	}
	return dbURL
}

// Migrate creates or upgrades the financials table
func Migrate(databaseURL string) error {
	migrationDir, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}

	migration, err := migrate.NewWithSourceInstance("iofs", migrationDir, MigrationURL(databaseURL))
	if err != nil {
		return err
	}
	defer migration.Close()

	err = migration.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return err
}
