// file: internals/features/resources/dto/resource_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validCreate() CreateResourceRequest {
	return CreateResourceRequest{
		SubjectID: uuid.New(),
		Type:      "note",
		Title:     "Rangkuman Bab 1",
		FileURL:   "https://drive.example.com/d/abc123",
	}
}

func TestCreateResourceRequest_Normalize(t *testing.T) {
	r := validCreate()
	r.Type = "  NOTE "
	r.Title = "  Rangkuman Bab 1  "
	r.FileURL = " https://drive.example.com/d/abc123 "
	r.FileMime = strPtr("   ")
	r.UploadedBy = strPtr("  Komting 21  ")
	r.Normalize()

	assert.Equal(t, "note", r.Type)
	assert.Equal(t, "Rangkuman Bab 1", r.Title)
	assert.Equal(t, "https://drive.example.com/d/abc123", r.FileURL)
	assert.Nil(t, r.FileMime)
	require.NotNil(t, r.UploadedBy)
	assert.Equal(t, "Komting 21", *r.UploadedBy)
}

func TestCreateResourceRequest_Validate(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(validCreate()))

	badType := validCreate()
	badType.Type = "video"
	assert.Error(t, v.Struct(badType), "type di luar note/assignment/paper ditolak")

	badURL := validCreate()
	badURL.FileURL = "bukan-url"
	assert.Error(t, v.Struct(badURL))

	noSubject := validCreate()
	noSubject.SubjectID = uuid.Nil
	assert.Error(t, v.Struct(noSubject))
}

func TestCreateResourceRequest_ToModel(t *testing.T) {
	r := validCreate()
	m := r.ToModel()
	assert.True(t, m.ResourceIsActive, "default aktif")

	inactive := false
	r.IsActive = &inactive
	m = r.ToModel()
	assert.False(t, m.ResourceIsActive)
}

func TestUpdateResourceRequest_Normalize(t *testing.T) {
	r := UpdateResourceRequest{
		Type:    strPtr(" PAPER "),
		Title:   strPtr("   "),
		FileURL: strPtr(""),
	}
	r.Normalize()

	require.NotNil(t, r.Type)
	assert.Equal(t, "paper", *r.Type)
	assert.Nil(t, r.Title)
	assert.Nil(t, r.FileURL)
}
