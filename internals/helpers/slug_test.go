// file: internals/helpers/slug_test.go
package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Struktur Data", "struktur-data"},
		{"already slug", "struktur-data", "struktur-data"},
		{"symbols collapse", "Kalkulus II (Lanjut)!", "kalkulus-ii-lanjut"},
		{"leading trailing junk", "  --Basis Data--  ", "basis-data"},
		{"multiple spaces", "Sistem   Operasi", "sistem-operasi"},
		{"digits kept", "Fisika 101", "fisika-101"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestSlugify_MaxLen(t *testing.T) {
	long := strings.Repeat("abc ", 100)

	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"), "potongan tidak boleh berakhir '-'")

	// maxLen <= 0 → pakai default
	got = Slugify("Jaringan Komputer", 0)
	assert.Equal(t, "jaringan-komputer", got)
}
