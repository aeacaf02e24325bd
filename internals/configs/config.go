package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
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
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
