package services

import (
	"context"
	"strings"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/utils"
)

type EmployeeService struct {
	store repository.Store
}

func NewEmployeeService(store repository.Store) *EmployeeService {
	return &EmployeeService{store: store}
}

func (s *EmployeeService) ListTitles(ctx context.Context, businessAreaID *uint64) ([]models.EmployeeTitle, error) {
	titles, err := s.store.ListEmployeeTitles(ctx, businessAreaID)
	if err != nil {
		return nil, storageError("Gagal mengambil jabatan", err)
	}
	return titles, nil
}

func (s *EmployeeService) List(ctx context.Context, q string) ([]models.EmployeeView, error) {
	employees, err := s.store.ListEmployees(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, storageError("Gagal mengambil data pegawai", err)
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, nip string) (*models.Employee, error) {
	employee, err := s.store.FindEmployeeByNIP(ctx, nip)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Pegawai tidak ditemukan"), "Gagal mengambil pegawai")
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, in models.CreateEmployeeInput) (*models.Employee, error) {
	in.NIP = strings.TrimSpace(in.NIP)
	in.NIK = strings.TrimSpace(in.NIK)
	in.FullName = strings.TrimSpace(in.FullName)

	switch {
	case in.NIP == "":
		return nil, apperror.Validation("NIP wajib diisi")
	case in.NIK == "":
		return nil, apperror.Validation("NIK wajib diisi")
	case in.FullName == "":
		return nil, apperror.Validation("Nama lengkap wajib diisi")
	case in.Gender != "L" && in.Gender != "P":
		return nil, apperror.Validation("Jenis kelamin harus L atau P")
	case in.EmployeeTitleID == 0:
		return nil, apperror.Validation("Jabatan wajib diisi")
	}

	dob, err := utils.ParseDate(in.DateOfBirth)
	if err != nil {
		return nil, apperror.Validation("Tanggal lahir harus berformat YYYY-MM-DD")
	}

	if in.BusinessAreaID != nil {
		ok, err := s.store.BusinessAreaExists(ctx, *in.BusinessAreaID)
		if err != nil {
			return nil, storageError("Gagal memeriksa klinik", err)
		}
		if !ok {
			return nil, apperror.Validation("Klinik tidak ditemukan")
		}
	}

	ok, err := s.store.EmployeeTitleExists(ctx, in.EmployeeTitleID)
	if err != nil {
		return nil, storageError("Gagal memeriksa jabatan", err)
	}
	if !ok {
		return nil, apperror.Validation("Jabatan tidak ditemukan")
	}

	employee := &models.Employee{
		NIP:             in.NIP,
		NIK:             in.NIK,
		FullName:        in.FullName,
		Gender:          in.Gender,
		DateOfBirth:     dob,
		Address:         in.Address,
		WhatsappNumber:  in.WhatsappNumber,
		BusinessAreaID:  in.BusinessAreaID,
		EmployeeTitleID: in.EmployeeTitleID,
		UserID:          in.UserID,
	}
	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return nil, employeeWriteError(err)
	}
	return employee, nil
}

// employeeWriteError membedakan NIP/NIK ganda dari konflik lain lewat
// nama unique index yang dilanggar.
func employeeWriteError(err error) error {
	key, ok := repository.DuplicateKey(err)
	if !ok {
		return storageError("Gagal menyimpan pegawai", err)
	}
	switch {
	case strings.Contains(key, "nip"):
		return apperror.Validation("NIP sudah digunakan.")
	case strings.Contains(key, "nik"):
		return apperror.Validation("NIK sudah digunakan.")
	default:
		return apperror.Conflict("Data pegawai sudah ada")
	}
}
