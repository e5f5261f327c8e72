package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/auth"
	"github.com/santgross/BIOFIT-EXPERT/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API for trainee progress and admin reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		d, err := openDeps(cmd, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer d.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			d.cfg.HTTPAddr = addr
		}

		secret, generated, err := d.cfg.SigningSecret()
		if err != nil {
			return err
		}
		if generated {
			d.logger.Warn("BIOFIT_JWT_SECRET not set; using a per-process secret, tokens end with this process")
		}

		router := httpapi.NewRouter(httpapi.Deps{
			Accounts: d.accounts,
			Tokens:   auth.NewTokens(secret, d.cfg.TokenTTL, nil),
			Progress: d.progress,
			Store:    d.store,
			Logger:   d.logger,
			Version:  version,
		})
		srv := &http.Server{
			Addr:              d.cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return httpapi.Run(ctx, srv, d.logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides BIOFIT_HTTP_ADDR)")
}
