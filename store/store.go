// Package store cung cấp lớp lưu trữ cho task và user.
// Backend mặc định nằm trong bộ nhớ; có thể thay bằng PostgreSQL qua biến môi trường.
package store

import (
	"errors"

	"github.com/taskmgr/go-task-api/models"
)

// ErrNotFound được trả về khi không tìm thấy bản ghi
var ErrNotFound = errors.New("record not found")

// TaskStore là hợp đồng cho mọi backend lưu task
type TaskStore interface {
	// ListByUser trả về toàn bộ task của một user, theo thứ tự tạo
	ListByUser(userID int) ([]models.Task, error)
	// Get trả về task theo id, ErrNotFound nếu không tồn tại
	Get(id int) (models.Task, error)
	// Create gán id kế tiếp (max hiện có + 1) rồi lưu task
	Create(task models.Task) (models.Task, error)
	// Update thay thế task có cùng id
	Update(task models.Task) error
	// Delete xóa và trả về task đã xóa
	Delete(id int) (models.Task, error)
}

// UserStore là hợp đồng tra cứu tài khoản
type UserStore interface {
	FindByUsername(username string) (models.User, error)
}
