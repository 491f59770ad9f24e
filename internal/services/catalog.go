package services

import (
	"context"
	"strings"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/utils"
)

// CatalogService data master yang dipakai form dashboard: klinik, produk, pasien
type CatalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListBusinessAreas(ctx context.Context) ([]models.BusinessArea, error) {
	areas, err := s.store.ListBusinessAreas(ctx)
	if err != nil {
		return nil, storageError("Gagal mengambil data klinik", err)
	}
	return areas, nil
}

func (s *CatalogService) CreateBusinessArea(ctx context.Context, in models.CreateBusinessAreaInput) (*models.BusinessArea, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.Validation("Nama klinik wajib diisi")
	}
	area := &models.BusinessArea{Name: name, Address: strings.TrimSpace(in.Address)}
	if err := s.store.CreateBusinessArea(ctx, area); err != nil {
		return nil, storageError("Gagal menyimpan klinik", err)
	}
	return area, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, businessAreaID uint64) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx, businessAreaID)
	if err != nil {
		return nil, storageError("Gagal mengambil produk", err)
	}
	return products, nil
}

func (s *CatalogService) ListPatients(ctx context.Context, q string) ([]models.Patient, error) {
	patients, err := s.store.ListPatients(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, storageError("Gagal mengambil data pasien", err)
	}
	return patients, nil
}

func (s *CatalogService) CreatePatient(ctx context.Context, in models.CreatePatientInput) (*models.Patient, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, apperror.Validation("Nama pasien wajib diisi")
	}
	if in.Gender != "L" && in.Gender != "P" {
		return nil, apperror.Validation("Jenis kelamin harus L atau P")
	}

	patient := &models.Patient{
		FullName: name,
		NIK:      in.NIK,
		Gender:   in.Gender,
		Phone:    in.Phone,
	}
	if in.DateOfBirth != "" {
		dob, err := utils.ParseDate(in.DateOfBirth)
		if err != nil {
			return nil, apperror.Validation("Tanggal lahir harus berformat YYYY-MM-DD")
		}
		patient.DateOfBirth = &dob
	}

	if err := s.store.CreatePatient(ctx, patient); err != nil {
		if _, dup := repository.DuplicateKey(err); dup {
			return nil, apperror.Conflict("NIK pasien sudah terdaftar")
		}
		return nil, storageError("Gagal menyimpan pasien", err)
	}
	return patient, nil
}
