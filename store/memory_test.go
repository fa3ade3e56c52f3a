package store

import (
	"errors"
	"testing"
	"time"

	"github.com/taskmgr/go-task-api/models"
)

func newTask(title string, userID int) models.Task {
	now := time.Now().UTC()
	return models.Task{
		Title:     title,
		Priority:  models.PriorityMedium,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryTaskStoreSeed(t *testing.T) {
	s := NewSeededMemoryTaskStore()

	admin, err := s.ListByUser(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(admin) != 2 || admin[0].ID != 1 || admin[1].ID != 2 {
		t.Errorf("user 1 seed tasks: %+v", admin)
	}

	other, _ := s.ListByUser(2)
	if len(other) != 1 || other[0].ID != 3 {
		t.Errorf("user 2 seed tasks: %+v", other)
	}

	none, _ := s.ListByUser(3)
	if len(none) != 0 {
		t.Errorf("user 3 has no seed tasks, got %+v", none)
	}
}

func TestMemoryTaskStoreCreate(t *testing.T) {
	t.Run("ids are max plus one", func(t *testing.T) {
		s := NewSeededMemoryTaskStore()
		created, err := s.Create(newTask("a", 1))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID != 4 {
			t.Errorf("got id %d, want 4", created.ID)
		}
	})

	t.Run("empty store starts at one", func(t *testing.T) {
		s := NewMemoryTaskStore()
		created, _ := s.Create(newTask("a", 1))
		if created.ID != 1 {
			t.Errorf("got id %d, want 1", created.ID)
		}
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		s := NewSeededMemoryTaskStore()
		if _, err := s.Delete(3); err != nil {
			t.Fatalf("delete: %v", err)
		}
		created, _ := s.Create(newTask("a", 1))
		if created.ID != 4 {
			t.Errorf("got id %d, want 4 (id 3 was the max ever seen)", created.ID)
		}

		// Xóa cả id cao nhất: id mới vẫn tăng tiếp, không quay lại
		if _, err := s.Delete(4); err != nil {
			t.Fatalf("delete: %v", err)
		}
		again, _ := s.Create(newTask("b", 1))
		if again.ID != 5 {
			t.Errorf("got id %d, want 5", again.ID)
		}
	})
}

func TestMemoryTaskStoreGetUpdateDelete(t *testing.T) {
	s := NewSeededMemoryTaskStore()

	task, err := s.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	task.Title = "renamed"
	if err := s.Update(task); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.Get(1)
	if got.Title != "renamed" {
		t.Errorf("update not visible: %+v", got)
	}

	if err := s.Update(models.Task{ID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing task: got %v, want ErrNotFound", err)
	}

	deleted, err := s.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Title != "renamed" {
		t.Errorf("delete returns the removed task, got %+v", deleted)
	}
	if _, err := s.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: got %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
