package models

// User là một tài khoản cố định, được seed lúc khởi động
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Không bao giờ trả hash ra ngoài
	Email        string `json:"email"`
}

// LoginInput là body của POST /api/login
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
