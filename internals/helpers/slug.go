// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	out = reDash.ReplaceAllString(out, "-")
	return out
}

// Slugify: GenerateSlug + potong ke maxLen (trim "-" sisa potongan)
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	out := GenerateSlug(s)
	if len(out) > maxLen {
		out = strings.Trim(out[:maxLen], "-")
	}
	return out
}

// EnsureUniqueSlug mencari slug unik pada tabel tertentu.
// base → slug dasar (hasil GenerateSlug).
// table → nama tabel, misal "subjects".
// column → nama kolom slug, misal "subject_slug".
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	slug := base

	// identifier di-quote, nilai tetap lewat placeholder
	qTable := pq.QuoteIdentifier(table)
	qColumn := pq.QuoteIdentifier(column)

	// fast path: cek slug exact ada/tidak
	var count int64
	if err := db.Table(qTable).
		Where(fmt.Sprintf("%s = ?", qColumn), slug).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return slug, nil
	}

	// cari suffix terbesar
	type row struct{ Slug string }
	var rows []row
	like := base + "%" // slug kita a-z0-9- aman dipakai LIKE
	if err := db.Table(qTable).
		Select(qColumn + " as slug").
		Where(fmt.Sprintf("%s = ? OR %s LIKE ?", qColumn, qColumn), base, like).
		Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		m := re.FindStringSubmatch(r.Slug)
		if len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
