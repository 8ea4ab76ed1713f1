// file: internals/helpers/pg_error_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil", nil, fiber.StatusOK},
		{"not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("ctx: %w", gorm.ErrRecordNotFound), fiber.StatusNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, fiber.StatusConflict},
		{"fk violation", &pgconn.PgError{Code: "23503"}, fiber.StatusBadRequest},
		{"check violation", &pgconn.PgError{Code: "23514"}, fiber.StatusBadRequest},
		{"unknown pg code", &pgconn.PgError{Code: "42P01"}, fiber.StatusInternalServerError},
		{"generic", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := TranslateDBError(tt.err, "", "")
			assert.Equal(t, tt.wantStatus, status)
			if tt.err != nil {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestTranslateDBError_CustomMessages(t *testing.T) {
	status, msg := TranslateDBError(gorm.ErrRecordNotFound, "Subject tidak ditemukan", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Subject tidak ditemukan", msg)

	status, msg = TranslateDBError(&pgconn.PgError{Code: "23505"}, "", "Kode sudah dipakai")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Kode sudah dipakai", msg)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
