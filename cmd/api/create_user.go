package main

import (
	"fmt"

	"clinic-backend/internal/config"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCreateUserCmd() *cobra.Command {
	var (
		username       string
		fullName       string
		password       string
		role           string
		businessAreaID uint64
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Buat akun login dashboard",
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

			var area *uint64
			if businessAreaID != 0 {
				area = &businessAreaID
			}

			auth := services.NewAuthService(repository.New(db, cfg.DB.TxIsolation), cfg.Auth.Secret, cfg.Auth.TTL)
			user, err := auth.CreateUser(cmd.Context(), username, fullName, password, role, area)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			logger.Get().Info("User dibuat", zap.Uint64("id", user.ID), zap.String("username", user.Username), zap.String("role", user.Role))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username login")
	cmd.Flags().StringVar(&fullName, "name", "", "nama lengkap")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (minimal 8 karakter)")
	cmd.Flags().StringVar(&role, "role", "STAFF", "ADMIN atau STAFF")
	cmd.Flags().Uint64Var(&businessAreaID, "business-area", 0, "ID klinik (opsional)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
