// file: internals/route/index_test.go
package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes_RegistersEndpoints(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil)

	has := func(method, path string) bool {
		for _, rt := range app.GetRoutes() {
			if rt.Method == method && rt.Path == path {
				return true
			}
		}
		return false
	}

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/public/auth/login"},
		{fiber.MethodGet, "/api/public/bulk-academic-data"},
		{fiber.MethodGet, "/api/public/recent-updates"},
		{fiber.MethodPut, "/api/u/offerings/reorder"},
		{fiber.MethodPut, "/api/u/resources/:id"},
		{fiber.MethodPost, "/api/a/subjects"},
		{fiber.MethodPut, "/api/a/reminders/:id"},
		{fiber.MethodPut, "/api/a/exams/:id"},
		{fiber.MethodPost, "/api/a/recent-updates"},
		{fiber.MethodPut, "/api/a/recent-updates/:id"},
		{fiber.MethodDelete, "/api/a/recent-updates/:id"},
		{fiber.MethodPost, "/api/a/cache/invalidate"},
	}
	for _, tt := range tests {
		assert.True(t, has(tt.method, tt.path), "%s %s harus terdaftar", tt.method, tt.path)
	}
}
