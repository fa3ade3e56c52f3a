package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Secret mặc định chỉ dùng cho chạy demo cục bộ
const defaultJWTSecret = "your-secret-key-change-in-production"

// LoadENV nạp biến môi trường từ file .env nếu có
func LoadENV() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// getEnv đọc biến môi trường với giá trị mặc định
func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// Port trả về cổng lắng nghe HTTP
func Port() string {
	return getEnv("PORT", "3000")
}

// JWTSecret trả về secret ký token, cảnh báo khi còn dùng giá trị mặc định
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("WARNING: JWT_SECRET is not set, using the insecure demo default")
		return defaultJWTSecret
	}
	return secret
}

// TasksBackend chọn backend lưu trữ: "memory" (mặc định) hoặc "postgres"
func TasksBackend() string {
	return getEnv("TASKS_BACKEND", "memory")
}

// PostgresURI trả về chuỗi kết nối PostgreSQL
func PostgresURI() string {
	return os.Getenv("POSTGRESQL_URI")
}

// MQTTURL trả về URL broker MQTT, rỗng nghĩa là tắt cầu nối sự kiện
func MQTTURL() string {
	return os.Getenv("MQTT_URL")
}

// AllowPlaintextLogin bật đường đăng nhập plaintext cho tài khoản demo.
// KHÔNG AN TOÀN — chỉ dành cho demo, mặc định tắt.
func AllowPlaintextLogin() bool {
	return os.Getenv("ALLOW_PLAINTEXT_LOGIN") == "true"
}
