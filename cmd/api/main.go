package main

import (
	"fmt"
	"os"

	"clinic-backend/internal/config"
	"clinic-backend/pkg/logger"

	"github.com/spf13/cobra"
)

const serviceName = "clinic-backend"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clinic-api",
		Short:         "Backend dashboard admin klinik",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newCreateUserCmd())
	return root
}

// bootstrap membaca config dan menyiapkan logger, dipakai semua command
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.Env, serviceName); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}
