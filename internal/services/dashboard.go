package services

import (
	"context"

	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

type DashboardService struct {
	store             repository.Store
	lowStockThreshold int
}

func NewDashboardService(store repository.Store, lowStockThreshold int) *DashboardService {
	return &DashboardService{store: store, lowStockThreshold: lowStockThreshold}
}

func (s *DashboardService) Stats(ctx context.Context, businessAreaID *uint64) (*models.DashboardStats, error) {
	stats, err := s.store.DashboardStats(ctx, businessAreaID, s.lowStockThreshold)
	if err != nil {
		return nil, storageError("Gagal mengambil ringkasan dashboard", err)
	}
	return stats, nil
}
