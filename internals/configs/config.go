package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config dibangun sekali saat start lalu di-inject ke komponen lain.
// Jangan tambah global mutable di sini.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration

	// batas ukuran file video per upload (dibaca penuh di service)
	MaxUploadBytes int64
	// guard kasar di transport: Content-Length multipart
	MultipartLimitBytes int64

	// timeout baca koneksi server; harus cukup longgar untuk body upload besar
	ReadTimeout time.Duration

	CloudinaryURL string
	UploadFolder  string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
}

const (
	tokenTTLDefault       = 60 * time.Minute
	maxUploadDefault      = int64(200 * 1024 * 1024) // 200MB per file
	multipartLimitDefault = int64(500 * 1024 * 1024) // 500MB Content-Length
	readTimeoutDefault    = 10 * time.Minute         // upload ratusan MB tidak selesai dalam hitungan detik
)

// =======================
// ENV LOADER
// =======================
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg := &Config{
		JWTSecret:           GetEnv("JWT_SECRET"),
		TokenTTL:            envMinutes("ACCESS_TOKEN_EXPIRE_MINUTES", tokenTTLDefault),
		MaxUploadBytes:      envBytes("MAX_UPLOAD_BYTES", maxUploadDefault),
		MultipartLimitBytes: envBytes("MULTIPART_LIMIT_BYTES", multipartLimitDefault),
		ReadTimeout:         envMinutes("SERVER_READ_TIMEOUT_MINUTES", readTimeoutDefault),
		CloudinaryURL:       GetEnv("CLOUDINARY_URL"),
		UploadFolder:        GetEnv("CLOUDINARY_UPLOAD_FOLDER", "educational_videos"),
		DBUser:              GetEnv("DB_USER"),
		DBPassword:          GetEnv("DB_PASSWORD"),
		DBHost:              GetEnv("DB_HOST"),
		DBPort:              GetEnv("DB_PORT"),
		DBName:              GetEnv("DB_NAME"),
		DBSSLMode:           GetEnv("DB_SSLMODE", "require"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if cfg.CloudinaryURL == "" {
		log.Println("❌ CLOUDINARY_URL belum diset!")
	} else {
		log.Println("✅ CLOUDINARY_URL berhasil dimuat.")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func envMinutes(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return def
}

func envBytes(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}
