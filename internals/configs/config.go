package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	JWTExpiry time.Duration
)

const (
	// Nama cookie sesi admin (http-only, SameSite=Lax).
	AuthCookieName = "auth_token"

	jwtExpiryDefault = 7 * 24 * time.Hour
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	JWTExpiry = jwtExpiryDefault
	if raw := GetEnv("JWT_EXPIRES_IN"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			JWTExpiry = d
		} else {
			log.Printf("⚠️ JWT_EXPIRES_IN tidak valid (%q), pakai default 168h", raw)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
