package models

import "time"

// VitalSigns disimpan sebagai kolom biasa (bukan JSON) supaya bisa diedit per field.
// Semua kosong saat rekam medis dibuat lewat assign pasien.
type VitalSigns struct {
	BloodPressureBefore string `gorm:"size:20;default:''" json:"blood_pressure_before"`
	BloodPressureAfter  string `gorm:"size:20;default:''" json:"blood_pressure_after"`
	PulseBefore         string `gorm:"size:10;default:''" json:"pulse_before"`
	PulseAfter          string `gorm:"size:10;default:''" json:"pulse_after"`
	TemperatureBefore   string `gorm:"size:10;default:''" json:"temperature_before"`
	TemperatureAfter    string `gorm:"size:10;default:''" json:"temperature_after"`
	WeightBefore        string `gorm:"size:10;default:''" json:"weight_before"`
	WeightAfter         string `gorm:"size:10;default:''" json:"weight_after"`
	Notes               string `gorm:"type:text" json:"notes"`
}

type MedicalRecord struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PatientID   uint64    `gorm:"not null;index" json:"patient_id"`
	ScheduleID  *uint64   `gorm:"index" json:"schedule_id"`
	OrderItemID uint64    `gorm:"not null;index" json:"order_item_id"`
	VitalSigns  `gorm:"embedded"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// MedicalRecordView baris list rekam medis per jadwal
type MedicalRecordView struct {
	MedicalRecord
	Patient PatientSummary `json:"patient"`
}

// UpdateVitalsInput: field nil tidak diubah
type UpdateVitalsInput struct {
	BloodPressureBefore *string `json:"blood_pressure_before"`
	BloodPressureAfter  *string `json:"blood_pressure_after"`
	PulseBefore         *string `json:"pulse_before"`
	PulseAfter          *string `json:"pulse_after"`
	TemperatureBefore   *string `json:"temperature_before"`
	TemperatureAfter    *string `json:"temperature_after"`
	WeightBefore        *string `json:"weight_before"`
	WeightAfter         *string `json:"weight_after"`
	Notes               *string `json:"notes"`
}

// Columns mengubah input jadi map kolom untuk gorm Updates
func (in UpdateVitalsInput) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	set("blood_pressure_before", in.BloodPressureBefore)
	set("blood_pressure_after", in.BloodPressureAfter)
	set("pulse_before", in.PulseBefore)
	set("pulse_after", in.PulseAfter)
	set("temperature_before", in.TemperatureBefore)
	set("temperature_after", in.TemperatureAfter)
	set("weight_before", in.WeightBefore)
	set("weight_after", in.WeightAfter)
	set("notes", in.Notes)
	return cols
}
