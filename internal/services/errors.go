package services

import (
	"errors"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/repository"
)

// storageError membungkus error repository yang tidak ditangani secara khusus
func storageError(message string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	if repository.IsForeignKeyViolation(err) {
		return apperror.Validation("Referensi data tidak valid")
	}
	if _, ok := repository.DuplicateKey(err); ok {
		return apperror.Conflict("Data sudah ada")
	}
	return apperror.Internal(message, err)
}

// notFoundOr menerjemahkan record-not-found ke nf, error lain ke storageError
func notFoundOr(err error, nf *apperror.Error, message string) error {
	if repository.IsNotFound(err) {
		return nf
	}
	return storageError(message, err)
}
