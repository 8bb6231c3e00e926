package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acara Sekolah", "acara-sekolah"},
		{"  Pengumuman   PPDB 2025  ", "pengumuman-ppdb-2025"},
		{"Café & Soirée!", "cafe-soiree"},
		{"---", "item"},
		{"", "item"},
		{"UPPER case Title", "upper-case-title"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, 100), "input %q", tt.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("kata ", 50)
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestEnsureUniqueSlug(t *testing.T) {
	type row struct {
		ID   int    `gorm:"primaryKey"`
		Slug string `gorm:"uniqueIndex"`
	}
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Table("rows").AutoMigrate(&row{}))

	slug, err := EnsureUniqueSlug(db, "rows", "slug", "acara-sekolah")
	require.NoError(t, err)
	assert.Equal(t, "acara-sekolah", slug)

	require.NoError(t, db.Table("rows").Create(&row{Slug: "acara-sekolah"}).Error)

	slug2, err := EnsureUniqueSlug(db, "rows", "slug", "acara-sekolah")
	require.NoError(t, err)
	assert.NotEqual(t, "acara-sekolah", slug2)
	assert.True(t, strings.HasPrefix(slug2, "acara-sekolah-"))
}
