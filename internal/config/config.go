package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Token    TokenConfig
	Render   RenderConfig
}

type AppConfig struct {
	Port    string
	Env     string
	BaseURL string // dipakai untuk URL verifikasi di QR code
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MinIOConfig struct {
	Endpoint string
	User     string
	Password string
	Bucket   string
	UseSSL   bool
}

type TokenConfig struct {
	Secret string
}

type RenderConfig struct {
	OrganizationName string
	// ClampCompetency membatasi lebar bar kompetensi ke 0-100.
	// Default mati: nilai di luar rentang dibiarkan lewat apa adanya.
	ClampCompetency bool
}

func Load() *Config {
	// Load .env jika ada (development), di production pakai env variable langsung
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	minioSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	clamp, _ := strconv.ParseBool(getEnv("RENDER_CLAMP_COMPETENCY", "false"))

	return &Config{
		App: AppConfig{
			Port:    getEnv("APP_PORT", "8080"),
			Env:     getEnv("APP_ENV", "development"),
			BaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "certify_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "certify_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		MinIO: MinIOConfig{
			Endpoint: getEnv("MINIO_ENDPOINT", "localhost:9000"),
			User:     getEnv("MINIO_USER", "minioadmin"),
			Password: getEnv("MINIO_PASSWORD", "minioadmin123"),
			Bucket:   getEnv("MINIO_BUCKET", "certify-templates"),
			UseSSL:   minioSSL,
		},
		Token: TokenConfig{
			Secret: getEnv("TOKEN_SECRET", "change-this-secret"),
		},
		Render: RenderConfig{
			OrganizationName: getEnv("ORGANIZATION_NAME", "Fakultas Teknik Unismuh Makassar"),
			ClampCompetency:  clamp,
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
