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
	"os"

	"github.com/penny-vault/tenk/data"
	"github.com/rs/zerolog/log"
)

// Write saves rows to fn in the given format
func Write(fn string, format Format, rows []data.Observation) error {
	var err error

	switch format {
	case CSV:
		err = writeCSVFile(fn, rows)
	case XLSX:
		err = WriteXLSX(fn, rows)
	case Parquet:
		err = WriteParquet(fn, rows)
	default:
		err = ErrUnknownFormat
	}

	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Str("Format", string(format)).Msg("export failed")
		return err
	}

	log.Info().Str("FileName", fn).Str("Format", string(format)).Int("NumRecords", len(rows)).Msg("exported snapshot")
	return nil
}

func writeCSVFile(fn string, rows []data.Observation) error {
	fh, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer fh.Close()

	return WriteCSV(fh, rows)
}
