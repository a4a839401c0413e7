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
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/penny-vault/tenk/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard as a JSON API",
	Long: `The serve sub-command loads the financials once and serves them until
interrupted. Every request reads the same table; nothing is reloaded or
modified while the server runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		table := openTable(ctx)
		srv := server.New(table, newCompleter(ctx))

		if err := srv.ListenAndServe(ctx, viper.GetString("server.addr")); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}

		log.Info().Msg("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	if err := viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for addr failed")
	}
}
