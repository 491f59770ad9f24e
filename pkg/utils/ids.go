package utils

import (
	"strconv"
	"strings"

	"clinic-backend/internal/apperror"
)

// ParseID mengubah parameter URL/query jadi uint64.
// Kosong, bukan angka, atau 0 dianggap input salah.
func ParseID(name, raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperror.Validation(name + " wajib diisi")
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || val == 0 {
		return 0, apperror.Validation(name + " harus berupa angka")
	}
	return val, nil
}

// ParseOptionalID sama dengan ParseID tapi kosong = nil
func ParseOptionalID(name, raw string) (*uint64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	val, err := ParseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &val, nil
}
