package main

import (
	"fmt"

	"clinic-backend/internal/config"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Buat/ubah tabel sesuai model (AutoMigrate)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := config.ConnectDB(cfg.DB)
			if err != nil {
				return err
			}
			defer config.CloseDB(db)

			if err := db.WithContext(cmd.Context()).AutoMigrate(models.All()...); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			logger.Get().Info("Migrasi selesai")
			return nil
		},
	}
}
