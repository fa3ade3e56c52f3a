// Package users giữ tập tài khoản cố định và việc kiểm tra mật khẩu.
package users

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskmgr/go-task-api/models"
	"github.com/taskmgr/go-task-api/store"
)

// Tài khoản demo, mật khẩu ở dạng plaintext chỉ để seed lúc khởi động
var demoAccounts = []struct {
	id       int
	username string
	password string
	email    string
}{
	{1, "admin", "password123", "admin@taskmanager.com"},
	{2, "testuser", "test123", "test@taskmanager.com"},
	{3, "demo", "demo", "demo@taskmanager.com"},
}

// MemoryStore là danh bạ user cố định trong bộ nhớ, chỉ đọc sau khi seed
type MemoryStore struct {
	byUsername map[string]models.User
}

// SeedDemoUsers băm mật khẩu demo và trả về danh sách user mẫu
func SeedDemoUsers() ([]models.User, error) {
	out := make([]models.User, 0, len(demoAccounts))
	for _, a := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", a.username, err)
		}
		out = append(out, models.User{
			ID:           a.id,
			Username:     a.username,
			PasswordHash: string(hash),
			Email:        a.email,
		})
	}
	return out, nil
}

// NewMemoryStore tạo danh bạ từ danh sách user đã seed
func NewMemoryStore(seed []models.User) *MemoryStore {
	m := make(map[string]models.User, len(seed))
	for _, u := range seed {
		m[u.Username] = u
	}
	return &MemoryStore{byUsername: m}
}

func (s *MemoryStore) FindByUsername(username string) (models.User, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

// VerifyPassword so khớp mật khẩu với hash bcrypt.
// allowPlaintext bật đường so sánh plaintext cho tài khoản demo — KHÔNG AN TOÀN,
// chỉ dành cho môi trường demo, mặc định tắt.
func VerifyPassword(user models.User, plaintext string, allowPlaintext bool) bool {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(plaintext)) == nil {
		return true
	}
	if allowPlaintext {
		for _, a := range demoAccounts {
			if a.username == user.Username && a.password == plaintext {
				return true
			}
		}
	}
	return false
}
