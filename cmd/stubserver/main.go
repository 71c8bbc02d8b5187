// Command stubserver runs the in-memory stub backend so the client can be
// developed and demoed without the real document-management service. It
// prints a dev bearer token on startup; export it as RFPDOCS_AUTH_TOKEN for
// rfpctl.
package main

import (
	"fmt"
	"log"
	"time"

	"rfpdocs/internal/config"
	"rfpdocs/internal/stub"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	token, err := stub.MintToken(cfg.Stub.JWTSecret, cfg.Stub.Tenant, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("minting dev token: %w", err)
	}
	log.Printf("Dev token for tenant %q:\n%s", cfg.Stub.Tenant, token)

	srv := stub.NewServer(&cfg.Stub)
	log.Printf("Stub backend listening on %s", cfg.Stub.Port)
	if err := srv.Router().Run(cfg.Stub.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
