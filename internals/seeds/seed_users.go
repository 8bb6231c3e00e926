package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// SeedSuperadmin membuat akun superadmin awal kalau belum ada.
func SeedSuperadmin(db *gorm.DB) {
	username := getenv("SEED_ADMIN_USERNAME", "superadmin")
	email := getenv("SEED_ADMIN_EMAIL", "admin@sekolahku.sch.id")
	password := getenv("SEED_ADMIN_PASSWORD", "ganti-password-ini")

	var existing userModel.UserModel
	if err := db.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ User '%s' sudah ada, dilewati.", username)
		return
	}

	hashed, err := helper.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	user := userModel.UserModel{
		Name:     "Super Admin",
		Email:    email,
		Username: username,
		Password: hashed,
		Role:     "superadmin",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("❌ Gagal membuat superadmin: %v", err)
	}

	log.Printf("✅ Superadmin '%s' berhasil dibuat.", username)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
