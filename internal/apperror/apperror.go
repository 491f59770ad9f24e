package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind mengelompokkan error domain supaya layer HTTP bisa memilih status
// code tanpa mencocokkan isi pesan.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindQuotaExceeded     Kind = "quota_exceeded"
	KindInsufficientStock Kind = "insufficient_stock"
	KindAlreadyAssigned   Kind = "already_assigned"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindExternal          Kind = "external"
	KindInternal          Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error

	// badRequest membuat NotFound dijawab 400, untuk endpoint yang
	// kontraknya memperlakukan referensi tidak dikenal sebagai input salah.
	badRequest bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

// NotFoundAsBadRequest sama dengan NotFound tapi dipetakan ke 400.
func NotFoundAsBadRequest(message string) *Error {
	e := New(KindNotFound, message)
	e.badRequest = true
	return e
}

func Conflict(message string) *Error { return New(KindConflict, message) }

func QuotaExceeded(message string) *Error { return New(KindQuotaExceeded, message) }

func InsufficientStock(message string) *Error { return New(KindInsufficientStock, message) }

func AlreadyAssigned(message string) *Error { return New(KindAlreadyAssigned, message) }

func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

func External(message string, err error) *Error { return Wrap(KindExternal, message, err) }

func Internal(message string, err error) *Error { return Wrap(KindInternal, message, err) }

// WithDetails menempelkan data tambahan yang ikut dikirim ke client.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

// KindOf mengembalikan kind dari error paling luar bertipe *Error,
// atau KindInternal kalau tidak ada.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation, KindQuotaExceeded, KindInsufficientStock, KindAlreadyAssigned:
		return http.StatusBadRequest
	case KindNotFound:
		if appErr.badRequest {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message mengembalikan pesan yang aman ditampilkan ke client.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Terjadi kesalahan pada server"
}
