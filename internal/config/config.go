package config

import (
	"fmt"
	"os"
)

// Config adalah seluruh konfigurasi aplikasi, dibaca dari environment.
type Config struct {
	Port string // port HTTP (default 3000, mengikuti deploy lama)

	DatabaseURL      string // kalau diisi, dipakai apa adanya
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	JWTSecret string // wajib

	ClientOrigin  string // origin frontend utama untuk CORS
	UploadDir     string // direktori penyimpanan gambar produk
	UploadBaseURL string // prefix URL publik untuk file yang di-upload
}

func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "3000"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "kopisenja"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		ClientOrigin:  getenv("CLIENT_ORIGIN", "http://localhost:5173"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
