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

// Package server exposes the session table over a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/penny-vault/tenk/library"
	"github.com/penny-vault/tenk/prompt"
	"github.com/rs/zerolog/log"
)

// Server serves one table loaded at startup. Handlers only read from it.
type Server struct {
	table     *library.Table
	completer prompt.Completer
}

// New returns a server for table. A nil completer is replaced by the stub.
func New(table *library.Table, completer prompt.Completer) *Server {
	if completer == nil {
		completer = prompt.StubCompleter{}
	}
	return &Server{
		table:     table,
		completer: completer,
	}
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.health)
	r.Get("/version", s.version)

	r.Route("/api", func(r chi.Router) {
		r.Get("/companies", s.companies)
		r.Get("/records", s.records)
		r.Get("/summary", s.summary)
		r.Get("/ask", s.ask)
		r.Get("/prompt", s.prompt)
		r.Get("/trends/{company}", s.trends)
		r.Get("/export.csv", s.exportCSV)
	})

	return r
}

// ListenAndServe runs until ctx is cancelled and then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("Addr", addr).Str("SessionID", s.table.ID.String()).Msg("serving dashboard")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Debug().
			Str("Method", r.Method).
			Str("Path", r.URL.Path).
			Int("Status", ww.Status()).
			Dur("Duration", time.Since(start)).
			Str("RequestID", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
