// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode error Postgres yang sering muncul dari constraint
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
	pgCheckViolation  = "23514"
)

// TranslateDBError memetakan error DB/GORM ke (status HTTP, pesan).
// Dipakai controller supaya mapping 404/409/400/500 konsisten.
func TranslateDBError(err error, notFoundMsg, conflictMsg string) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFoundMsg == "" {
			notFoundMsg = "Data tidak ditemukan"
		}
		return fiber.StatusNotFound, notFoundMsg
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if conflictMsg == "" {
				conflictMsg = "Data duplikat"
			}
			return fiber.StatusConflict, conflictMsg
		case pgFKViolation:
			return fiber.StatusBadRequest, "Referensi data tidak valid"
		case pgCheckViolation:
			return fiber.StatusBadRequest, "Data melanggar constraint"
		}
	}

	return fiber.StatusInternalServerError, "Terjadi kesalahan pada server"
}

// IsUniqueViolation: cek cepat untuk error 23505
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
