package store

import (
	"sync"
	"time"

	"github.com/taskmgr/go-task-api/models"
)

// MemoryTaskStore giữ task trong một slice dùng chung giữa các request.
// Fiber xử lý request song song nên mọi thao tác đều được khóa bằng mutex.
type MemoryTaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int
}

// NewMemoryTaskStore tạo store trống
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{nextID: 1}
}

// SeedTasks trả về 3 task mẫu được nạp lúc khởi động
func SeedTasks(now time.Time) []models.Task {
	return []models.Task{
		{
			ID:          1,
			Title:       "Complete QA Challenge",
			Description: "Implement Playwright and Postman tests",
			Priority:    models.PriorityHigh,
			Completed:   false,
			UserID:      1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Review Test Cases",
			Description: "Go through all test scenarios",
			Priority:    models.PriorityMedium,
			Completed:   true,
			UserID:      1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Title:       "Update Documentation",
			Description: "Write comprehensive test plan",
			Priority:    models.PriorityLow,
			Completed:   false,
			UserID:      2,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// NewSeededMemoryTaskStore tạo store đã nạp sẵn dữ liệu mẫu
func NewSeededMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: SeedTasks(time.Now().UTC()), nextID: 4}
}

func (s *MemoryTaskStore) ListByUser(userID int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryTaskStore) Get(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

func (s *MemoryTaskStore) Create(task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// id kế tiếp = max id từng thấy + 1, không tái sử dụng id đã xóa
	next := s.nextID
	for _, t := range s.tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	task.ID = next
	s.nextID = next + 1
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *MemoryTaskStore) Update(task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryTaskStore) Delete(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}
