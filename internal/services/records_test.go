package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListMedicalRecordsBySchedule(t *testing.T) {
	store := new(mocks.Store)
	store.On("ListMedicalRecordsBySchedule", mock.Anything, uint64(3)).Return([]models.MedicalRecord{
		{ID: 1, PatientID: 7, Patient: &models.Patient{ID: 7, FullName: "Budi", Gender: "L"}},
		{ID: 2, PatientID: 8},
	}, nil)

	views, err := NewMedicalRecordService(store).ListBySchedule(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Budi", views[0].Patient.FullName)
	assert.Nil(t, views[0].MedicalRecord.Patient)
	assert.Empty(t, views[1].Patient.FullName)
}

func TestUpdateVitals(t *testing.T) {
	bp := "120/80"
	notes := "stabil"

	t.Run("hanya field yang dikirim", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindMedicalRecord", mock.Anything, uint64(1)).Return(&models.MedicalRecord{ID: 1}, nil)
		store.On("UpdateMedicalRecord", mock.Anything, uint64(1), map[string]interface{}{
			"blood_pressure_before": "120/80",
			"notes":                 "stabil",
		}).Return(nil)

		_, err := NewMedicalRecordService(store).UpdateVitals(context.Background(), 1, models.UpdateVitalsInput{
			BloodPressureBefore: &bp,
			Notes:               &notes,
		})

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("body kosong", func(t *testing.T) {
		_, err := NewMedicalRecordService(new(mocks.Store)).UpdateVitals(context.Background(), 1, models.UpdateVitalsInput{})
		assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
	})

	t.Run("tidak ditemukan", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindMedicalRecord", mock.Anything, uint64(9)).Return(nil, fmt.Errorf("find: %w", gorm.ErrRecordNotFound))

		_, err := NewMedicalRecordService(store).UpdateVitals(context.Background(), 9, models.UpdateVitalsInput{Notes: &notes})
		assertKind(t, err, apperror.KindNotFound, http.StatusNotFound)
	})
}
