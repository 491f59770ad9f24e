package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/logger"
	"clinic-backend/pkg/metrics"

	"go.uber.org/zap"
)

// AssignmentResult dikirim balik setelah pasien di-assign ke item order
type AssignmentResult struct {
	OrderItem      *models.OrderItem      `json:"order_item"`
	MedicalRecords []models.MedicalRecord `json:"medical_records"`
}

type AssignmentService struct {
	store    repository.Store
	notifier notify.Notifier
}

func NewAssignmentService(store repository.Store, notifier notify.Notifier) *AssignmentService {
	return &AssignmentService{store: store, notifier: notifier}
}

// AssignPatients mengikat pasien ke satu item order. Jumlah pasien harus
// sama persis dengan quantity item, dan item hanya bisa di-assign sekali.
// Baris item dikunci (FOR UPDATE) sehingga assign paralel ke item yang sama
// akan menunggu lalu melihat is_assigned = true.
func (s *AssignmentService) AssignPatients(ctx context.Context, orderID string, itemID uint64, patientIDs []uint64) (*AssignmentResult, error) {
	if len(patientIDs) == 0 {
		return nil, apperror.Validation("patient_ids wajib diisi")
	}
	if dup, ok := firstDuplicate(patientIDs); ok {
		return nil, apperror.Validation(fmt.Sprintf("Pasien %d dikirim lebih dari sekali", dup))
	}

	var (
		records []models.MedicalRecord
		item    *models.OrderItem
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		locked, err := tx.LockOrderItem(ctx, orderID, itemID)
		if err != nil {
			return notFoundOr(err, apperror.NotFound("Order item tidak ditemukan"), "Gagal mengambil order item")
		}

		if len(patientIDs) != locked.Quantity {
			return apperror.Validation(fmt.Sprintf(
				"Jumlah pasien (%d) harus sama dengan quantity order item (%d)", len(patientIDs), locked.Quantity))
		}

		found, err := tx.ExistingPatientIDs(ctx, patientIDs)
		if err != nil {
			return storageError("Gagal memeriksa pasien", err)
		}
		if missing := missingIDs(patientIDs, found); len(missing) > 0 {
			return apperror.Validation("Pasien tidak ditemukan: " + joinIDs(missing)).
				WithDetails(map[string]interface{}{"missing_patient_ids": missing})
		}

		if locked.IsAssigned {
			return apperror.AlreadyAssigned("Order item sudah di-assign")
		}

		records = make([]models.MedicalRecord, 0, len(patientIDs))
		for _, pid := range patientIDs {
			records = append(records, models.MedicalRecord{
				PatientID:   pid,
				ScheduleID:  locked.ScheduleID,
				OrderItemID: locked.ID,
			})
		}
		if err := tx.CreateMedicalRecords(ctx, records); err != nil {
			return storageError("Gagal membuat rekam medis", err)
		}
		if err := tx.MarkOrderItemAssigned(ctx, locked.ID); err != nil {
			return storageError("Gagal menandai order item", err)
		}
		if err := tx.SetOrderAttendance(ctx, orderID, models.AttendanceAttended); err != nil {
			return storageError("Gagal mengubah status kehadiran", err)
		}

		item, err = tx.FindOrderItemDetail(ctx, locked.ID)
		return storageError("Gagal mengambil order item", err)
	})
	if err != nil {
		return nil, err
	}

	metrics.PatientsAssigned.Add(float64(len(records)))
	logger.FromContext(ctx).Info("patients assigned",
		zap.String("order_id", orderID),
		zap.Uint64("order_item_id", itemID),
		zap.Int("patients", len(records)))

	notify.Send(ctx, s.notifier, notify.Message{
		Topic: notify.BusinessAreaTopic(item.BusinessAreaID),
		Title: "Pasien di-assign",
		Body:  fmt.Sprintf("%d pasien terdaftar untuk order %s", len(records), orderID),
		Data: map[string]string{
			"type":          "patients_assigned",
			"order_id":      orderID,
			"order_item_id": fmt.Sprintf("%d", itemID),
		},
	})

	return &AssignmentResult{OrderItem: item, MedicalRecords: records}, nil
}

func firstDuplicate(ids []uint64) (uint64, bool) {
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return 0, false
}

// missingIDs mengembalikan id di want yang tidak ada di found, urut naik
func missingIDs(want, found []uint64) []uint64 {
	have := make(map[uint64]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var missing []uint64
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
