package utils

import (
	"fmt"
	"time"
	_ "time/tzdata" // zoneinfo ikut di binary, container minimal sering tidak punya
)

const DateLayout = "2006-01-02"

// DayBoundaries mengembalikan rentang UTC [start, end) untuk satu tanggal
// kalender di zona waktu client. end adalah tengah malam hari berikutnya,
// jadi hari dengan DST tetap benar.
func DayBoundaries(date, timezone string) (time.Time, time.Time, error) {
	if timezone == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("timezone wajib diisi")
	}
	// "Local" berarti zona server, bukan zona client
	if timezone == "Local" {
		return time.Time{}, time.Time{}, fmt.Errorf("timezone tidak valid: %s", timezone)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("timezone tidak valid: %w", err)
	}

	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("format tanggal harus YYYY-MM-DD: %w", err)
	}

	start := day.UTC()
	end := day.AddDate(0, 0, 1).UTC()
	return start, end, nil
}

// ParseDate parsing tanggal YYYY-MM-DD sebagai tanggal UTC (untuk kolom DATE)
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
