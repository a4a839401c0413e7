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
package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/penny-vault/tenk/dashboard"
	"github.com/penny-vault/tenk/data"
	"github.com/penny-vault/tenk/export"
	"github.com/penny-vault/tenk/pkginfo"
	"github.com/penny-vault/tenk/prompt"
	"github.com/penny-vault/tenk/query"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

type companiesResponse struct {
	Companies []string `json:"companies"`
	Years     []int    `json:"years"`
}

type askResponse struct {
	query.Query
	Metric string `json:"metric"`
	Answer string `json:"answer"`
}

type promptResponse struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}

func (s *Server) version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, pkginfo.Current())
}

func (s *Server) companies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, companiesResponse{
		Companies: s.table.Companies(),
		Years:     s.table.Years(),
	})
}

func (s *Server) records(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filtered(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	render.JSON(w, r, rows)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.table.Latest())
}

func (s *Server) ask(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("q")
	rows := s.table.Rows()
	parsed := query.Parse(question, s.table.Companies())

	render.JSON(w, r, askResponse{
		Query:  parsed,
		Metric: parsed.Metric.String(),
		Answer: query.Answer(question, rows),
	})
}

func (s *Server) prompt(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("q")
	rows := s.table.Rows()
	if company, ok := query.DetectCompany(question, s.table.Companies()); ok {
		rows = s.table.CompanyRows(company)
	}

	resp := promptResponse{
		Prompt: prompt.Render(prompt.BuildContext(rows), question),
	}

	if complete, _ := strconv.ParseBool(r.URL.Query().Get("complete")); complete {
		completion, err := s.completer.Complete(r.Context(), resp.Prompt)
		if err != nil {
			log.Error().Err(err).Msg("completion failed")
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, errorResponse{Error: err.Error()})
			return
		}
		resp.Completion = completion
	}

	render.JSON(w, r, resp)
}

func (s *Server) trends(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	rows := s.table.CompanyRows(company)
	if len(rows) == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: fmt.Sprintf("unknown company %q", company)})
		return
	}
	render.JSON(w, r, dashboard.Trends(company, rows))
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filtered(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	company := r.URL.Query().Get("company")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(company, year, export.CSV)))

	if err := export.WriteCSV(w, rows); err != nil {
		log.Error().Err(err).Msg("write csv response failed")
	}
}

func (s *Server) filtered(r *http.Request) ([]data.Observation, error) {
	company := r.URL.Query().Get("company")

	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" && yearStr != "All" {
		var err error
		if year, err = strconv.Atoi(yearStr); err != nil {
			return nil, fmt.Errorf("invalid year %q", yearStr)
		}
	}

	return s.table.Filter(company, year), nil
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}
