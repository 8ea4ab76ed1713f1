// file: internals/features/home/widgets/dto/widget_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func TestUpdateRecentUpdateRequest_Normalize(t *testing.T) {
	r := UpdateRecentUpdateRequest{
		Title: strPtr("  Pengumuman UTS  "),
		Body:  strPtr("   "),
		Link:  strPtr(" https://kampus.example.ac.id/uts "),
	}
	r.Normalize()

	require.NotNil(t, r.Title)
	assert.Equal(t, "Pengumuman UTS", *r.Title)
	assert.Nil(t, r.Body, "body whitespace-only harus jadi nil (tidak diupdate)")
	require.NotNil(t, r.Link)
	assert.Equal(t, "https://kampus.example.ac.id/uts", *r.Link)
}

func TestUpdateRecentUpdateRequest_Validate(t *testing.T) {
	v := validator.New()

	ok := UpdateRecentUpdateRequest{
		Title:   strPtr("Pengumuman UTS"),
		Payload: datatypes.JSONMap{"minggu": 7},
	}
	assert.NoError(t, v.Struct(ok))

	// semua field kosong = partial update tanpa perubahan, tetap valid
	assert.NoError(t, v.Struct(UpdateRecentUpdateRequest{}))

	badLink := UpdateRecentUpdateRequest{Link: strPtr("bukan-url")}
	assert.Error(t, v.Struct(badLink))

	shortTitle := UpdateRecentUpdateRequest{Title: strPtr("a")}
	assert.Error(t, v.Struct(shortTitle))
}
