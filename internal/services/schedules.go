package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/metrics"
	"clinic-backend/pkg/utils"
)

type ScheduleService struct {
	store           repository.Store
	defaultTimezone string
}

func NewScheduleService(store repository.Store, defaultTimezone string) *ScheduleService {
	return &ScheduleService{store: store, defaultTimezone: defaultTimezone}
}

func (s *ScheduleService) Get(ctx context.Context, id uint64) (*models.Schedule, error) {
	schedule, err := s.store.FindSchedule(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Jadwal tidak ditemukan"), "Gagal mengambil jadwal")
	}
	return schedule, nil
}

// SubtractQuota mengurangi sisa kuota jadwal. Jumlah yang melebihi sisa
// ditolak tanpa menulis apa pun.
func (s *ScheduleService) SubtractQuota(ctx context.Context, id uint64, amount int) (*models.Schedule, error) {
	if amount <= 0 {
		return nil, apperror.Validation("quantity_to_subtract harus lebih dari 0")
	}

	var schedule *models.Schedule
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		schedule, err = tx.LockSchedule(ctx, id)
		if err != nil {
			return notFoundOr(err, apperror.NotFound("Jadwal tidak ditemukan"), "Gagal mengambil jadwal")
		}

		if amount > schedule.RemainingQuota {
			return quotaExceeded(schedule.RemainingQuota, amount)
		}

		if err := tx.DecrementScheduleQuota(ctx, id, amount); err != nil {
			if errors.Is(err, repository.ErrQuotaExceeded) {
				return quotaExceeded(schedule.RemainingQuota, amount)
			}
			return notFoundOr(err, apperror.NotFound("Jadwal tidak ditemukan"), "Gagal mengurangi kuota")
		}
		schedule.RemainingQuota -= amount
		return nil
	})
	if err != nil {
		if apperror.Is(err, apperror.KindQuotaExceeded) {
			metrics.QuotaRejections.Inc()
		}
		return nil, err
	}
	return schedule, nil
}

func quotaExceeded(remaining, requested int) error {
	return apperror.QuotaExceeded("Jumlah melebihi sisa kuota").WithDetails(map[string]interface{}{
		"remaining_quota": remaining,
		"requested":       requested,
	})
}

// ChangeService mengganti layanan (produk) jadwal dengan produk lain
// di klinik yang sama.
func (s *ScheduleService) ChangeService(ctx context.Context, id, newServiceID uint64) (uint64, error) {
	if newServiceID == 0 {
		return 0, apperror.Validation("newServiceId wajib diisi")
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		schedule, err := tx.LockSchedule(ctx, id)
		if err != nil {
			return notFoundOr(err, apperror.NotFound("Jadwal tidak ditemukan"), "Gagal mengambil jadwal")
		}
		if _, err := tx.FindProduct(ctx, newServiceID, schedule.BusinessAreaID); err != nil {
			return notFoundOr(err, apperror.NotFoundAsBadRequest("Layanan tidak ditemukan"), "Gagal mengambil layanan")
		}
		return storageError("Gagal mengganti layanan", tx.UpdateScheduleProduct(ctx, id, newServiceID))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ScheduleService) Create(ctx context.Context, in models.CreateScheduleInput) (*models.Schedule, error) {
	if in.MaxQuota <= 0 {
		return nil, apperror.Validation("max_quota harus lebih dari 0")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, apperror.Validation("end_time harus setelah start_time")
	}

	if _, err := s.store.FindProduct(ctx, in.ProductID, in.BusinessAreaID); err != nil {
		return nil, notFoundOr(err, apperror.NotFoundAsBadRequest("Layanan tidak ditemukan"), "Gagal mengambil layanan")
	}

	schedule := &models.Schedule{
		BusinessAreaID: in.BusinessAreaID,
		ProductID:      in.ProductID,
		StartTime:      in.StartTime.UTC(),
		EndTime:        in.EndTime.UTC(),
		MaxQuota:       in.MaxQuota,
		RemainingQuota: in.MaxQuota,
	}
	if err := s.store.CreateSchedule(ctx, schedule); err != nil {
		return nil, storageError("Gagal membuat jadwal", err)
	}
	return schedule, nil
}

// List jadwal yang mulai pada tanggal lokal date (YYYY-MM-DD) di zona tz.
// tz kosong memakai zona default, date kosong berarti hari ini di zona itu.
func (s *ScheduleService) List(ctx context.Context, businessAreaID *uint64, date, tz string) ([]models.Schedule, error) {
	if tz == "" {
		tz = s.defaultTimezone
	}
	if date == "" {
		date = today(tz)
	}
	start, end, err := utils.DayBoundaries(date, tz)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("Tanggal atau zona waktu tidak valid: %v", err))
	}

	schedules, err := s.store.ListSchedules(ctx, businessAreaID, start, end)
	if err != nil {
		return nil, storageError("Gagal mengambil jadwal", err)
	}
	return schedules, nil
}

func today(tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(utils.DateLayout)
}
