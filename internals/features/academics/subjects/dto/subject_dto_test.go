// file: internals/features/academics/subjects/dto/subject_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateSubjectRequest_Normalize(t *testing.T) {
	r := CreateSubjectRequest{
		Code: "  if2110 ",
		Name: "  Struktur Data  ",
		Desc: strPtr("   "),
		Slug: strPtr("  Struktur Data & Algoritma  "),
	}
	r.Normalize()

	assert.Equal(t, "IF2110", r.Code)
	assert.Equal(t, "Struktur Data", r.Name)
	assert.Nil(t, r.Desc, "desc whitespace-only harus jadi nil")
	require.NotNil(t, r.Slug)
	assert.Equal(t, "struktur-data-algoritma", *r.Slug)
}

func TestCreateSubjectRequest_Validate(t *testing.T) {
	v := validator.New()

	ok := CreateSubjectRequest{Code: "IF2110", Name: "Struktur Data"}
	assert.NoError(t, v.Struct(ok))

	missingCode := CreateSubjectRequest{Name: "Struktur Data"}
	assert.Error(t, v.Struct(missingCode))

	missingName := CreateSubjectRequest{Code: "IF2110"}
	assert.Error(t, v.Struct(missingName))
}

func TestUpdateSubjectRequest_Normalize(t *testing.T) {
	r := UpdateSubjectRequest{
		Code: strPtr("  "),
		Name: strPtr(" Basis Data "),
		Desc: strPtr("  hapus spasi  "),
	}
	r.Normalize()

	assert.Nil(t, r.Code, "code whitespace-only harus jadi nil (tidak diupdate)")
	require.NotNil(t, r.Name)
	assert.Equal(t, "Basis Data", *r.Name)
	require.NotNil(t, r.Desc)
	assert.Equal(t, "hapus spasi", *r.Desc)

	// desc string kosong dipertahankan: artinya hapus desc
	r2 := UpdateSubjectRequest{Desc: strPtr("")}
	r2.Normalize()
	require.NotNil(t, r2.Desc)
	assert.Equal(t, "", *r2.Desc)
}
