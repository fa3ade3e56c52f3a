// Package token phát hành và kiểm tra bearer token JWT.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmgr/go-task-api/models"
)

// TokenTTL là thời hạn của token; hết hạn thì phải đăng nhập lại, không có refresh
const TokenTTL = 24 * time.Hour

// Claims là nội dung của token: định danh user cộng các claim chuẩn
type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Service ký và kiểm tra token bằng một secret HS256
type Service struct {
	secret []byte
}

// NewService tạo token service với secret đã cấu hình
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Generate ký token 24h chứa id, username, email của user
func (s *Service) Generate(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse kiểm tra chữ ký và hạn của token, trả về claims nếu hợp lệ
func (s *Service) Parse(raw string) (*Claims, error) {
	claims := new(Claims)
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
