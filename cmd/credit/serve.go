package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/api"
	"github.com/Veraticus/the-credit-must-flow/internal/certs"
	"github.com/Veraticus/the-credit-must-flow/internal/cli"
	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the score, offers, and insights over HTTP",
		Long: `Start the JSON API. New transactions posted to /api/transactions are
scored immediately and every client sees the updated snapshot.

With --tls a self-signed localhost certificate is created under
server.cert_dir on first use and reused afterwards.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed localhost certificate")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.tls", cmd.Flags().Lookup("tls"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, cfg, err := loadEngine(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	e.Subscribe(func(snap engine.Snapshot) {
		slog.Info("Published snapshot",
			"version", snap.Version,
			"overall", snap.Score.Overall,
			"band", snap.Band,
			"transactions", snap.TransactionCount)
	})

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(cmd.Context(), "API server")
	defer stop()

	server := api.NewServer(e, version)

	listen := func() error { return server.Listen(cfg.Server.Addr) }
	if cfg.Server.TLS {
		cert, certErr := certs.NewFileManager(cfg.Server.CertDir).GetOrCreateCertificate()
		if certErr != nil {
			return fmt.Errorf("failed to prepare TLS certificate: %w", certErr)
		}
		listen = func() error { return server.ListenTLS(cfg.Server.Addr, cert) }
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("API server stopped: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server")
	if err := server.Shutdown(shutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("API server stopped: %w", err)
	}
	return nil
}
