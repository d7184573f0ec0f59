package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug menormalkan string menjadi slug:
// lower-case, non-alnum jadi "-", collapse "-", trim di kedua ujung.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	return regexp.MustCompile(`-+`).ReplaceAllString(out, "-")
}

// EnsureUniqueSlug: coba base, lalu base-2, base-3, ... (case-insensitive).
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	if base == "" {
		base = "item"
	}
	if len(base) > DefaultSlugMaxLen {
		base = strings.Trim(base[:DefaultSlugMaxLen], "-")
	}

	candidate := base
	for i := 2; ; i++ {
		var cnt int64
		err := db.Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
			Count(&cnt).Error
		if err != nil {
			return "", err
		}
		if cnt == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
		if i > 50 {
			return "", fmt.Errorf("slug %q: kehabisan kandidat unik", base)
		}
	}
}
