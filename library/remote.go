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
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/penny-vault/tenk/data"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// LoadURL downloads a financials CSV over HTTP. The Last-Modified header, when
// present, is returned as the modification time.
func LoadURL(ctx context.Context, url string) ([]data.Financial, time.Time, error) {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2)

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(url)

	if err != nil {
		return nil, time.Time{}, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, time.Time{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	records, err := ParseCSV(resp.Body())
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%s: %w", url, err)
	}

	var modTime time.Time
	if lastModified := resp.Header().Get("Last-Modified"); lastModified != "" {
		if parsed, err := http.ParseTime(lastModified); err == nil {
			modTime = parsed
		}
	}

	return records, modTime, nil
}
