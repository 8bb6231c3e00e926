package seeds

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/pengaturan/model"
)

var defaultPengaturan = []model.PengaturanModel{
	{Kategori: "umum", Key: "nama_sekolah", Value: datatypes.JSON(`"Sekolahku"`), Label: "Nama Sekolah", Type: "text", Group: "identitas", Order: 1},
	{Kategori: "umum", Key: "alamat", Value: datatypes.JSON(`""`), Label: "Alamat", Type: "textarea", Group: "identitas", Order: 2},
	{Kategori: "umum", Key: "telepon", Value: datatypes.JSON(`""`), Label: "Telepon", Type: "text", Group: "kontak", Order: 3},
	{Kategori: "umum", Key: "email", Value: datatypes.JSON(`""`), Label: "Email", Type: "text", Group: "kontak", Order: 4},
	{Kategori: "tampilan", Key: "logo", Value: datatypes.JSON(`""`), Label: "Logo", Type: "image", Group: "branding", Order: 5},
	{Kategori: "tampilan", Key: "hero_image", Value: datatypes.JSON(`""`), Label: "Gambar Hero", Type: "image", Group: "branding", Order: 6},
	{Kategori: "seo", Key: "meta_description", Value: datatypes.JSON(`""`), Label: "Meta Description", Type: "textarea", Group: "seo", Order: 7},
	{Kategori: "sosial", Key: "instagram", Value: datatypes.JSON(`""`), Label: "Instagram", Type: "text", Group: "sosial", Order: 8},
	{Kategori: "sosial", Key: "youtube", Value: datatypes.JSON(`""`), Label: "YouTube", Type: "text", Group: "sosial", Order: 9},
	{Kategori: "umum", Key: "ppdb_open", Value: datatypes.JSON(`false`), Label: "PPDB Dibuka", Type: "boolean", Group: "ppdb", Order: 10},
}

// SeedPengaturan mengisi baris pengaturan default, key yang sudah ada dilewati.
func SeedPengaturan(db *gorm.DB) {
	for _, row := range defaultPengaturan {
		var existing model.PengaturanModel
		if err := db.First(&existing, "key = ?", row.Key).Error; err == nil {
			log.Printf("ℹ️ Pengaturan '%s' sudah ada, dilewati.", row.Key)
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Gagal membuat pengaturan '%s': %v", row.Key, err)
		}
		log.Printf("✅ Pengaturan '%s' dibuat.", row.Key)
	}
}
