package services

import (
	"context"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

type MedicalRecordService struct {
	store repository.Store
}

func NewMedicalRecordService(store repository.Store) *MedicalRecordService {
	return &MedicalRecordService{store: store}
}

func (s *MedicalRecordService) ListBySchedule(ctx context.Context, scheduleID uint64) ([]models.MedicalRecordView, error) {
	records, err := s.store.ListMedicalRecordsBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, storageError("Gagal mengambil rekam medis", err)
	}

	views := make([]models.MedicalRecordView, 0, len(records))
	for _, r := range records {
		view := models.MedicalRecordView{MedicalRecord: r}
		if r.Patient != nil {
			view.Patient = models.PatientSummary{
				ID:          r.Patient.ID,
				FullName:    r.Patient.FullName,
				Gender:      r.Patient.Gender,
				DateOfBirth: r.Patient.DateOfBirth,
			}
		}
		view.MedicalRecord.Patient = nil
		views = append(views, view)
	}
	return views, nil
}

func (s *MedicalRecordService) Get(ctx context.Context, id uint64) (*models.MedicalRecord, error) {
	record, err := s.store.FindMedicalRecord(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Rekam medis tidak ditemukan"), "Gagal mengambil rekam medis")
	}
	return record, nil
}

// UpdateVitals mengubah tanda vital sebelum/sesudah tindakan. Field yang
// tidak dikirim dibiarkan.
func (s *MedicalRecordService) UpdateVitals(ctx context.Context, id uint64, in models.UpdateVitalsInput) (*models.MedicalRecord, error) {
	cols := in.Columns()
	if len(cols) == 0 {
		return nil, apperror.Validation("Tidak ada data yang diubah")
	}

	if _, err := s.store.FindMedicalRecord(ctx, id); err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Rekam medis tidak ditemukan"), "Gagal mengambil rekam medis")
	}
	if err := s.store.UpdateMedicalRecord(ctx, id, cols); err != nil {
		return nil, storageError("Gagal menyimpan rekam medis", err)
	}
	return s.Get(ctx, id)
}
