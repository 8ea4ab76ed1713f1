// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/x", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit", "/x?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/x?page=2&limit=5", Paging{Page: 2, PerPage: 5, Offset: 5, Limit: 5}},
		{"clamped to max", "/x?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"invalid page", "/x?page=-4", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"invalid per_page", "/x?per_page=abc", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveVia(t, tt.target, 20, 100))
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(95, 2, 20, 20)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, int64(95), p.Total)

	// kosong → tetap 1 halaman
	p = BuildPaginationFromPage(0, 1, 20, 0)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
