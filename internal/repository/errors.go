package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry    = 1062
	mysqlForeignKeyMissing = 1452
)

// IsNotFound true kalau err berasal dari record yang tidak ada
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// DuplicateKey mengembalikan nama key yang dilanggar kalau err adalah
// duplicate entry MySQL. Pesan MySQL: "Duplicate entry 'x' for key 'tabel.nama_key'".
func DuplicateKey(err error) (string, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != mysqlDuplicateEntry {
		return "", false
	}

	msg := myErr.Message
	idx := strings.LastIndex(msg, "for key '")
	if idx < 0 {
		return "", true
	}
	key := strings.TrimSuffix(msg[idx+len("for key '"):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key, true
}

// IsForeignKeyViolation true kalau insert/update merujuk baris yang tidak ada
func IsForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlForeignKeyMissing
}
