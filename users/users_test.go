package users

import (
	"errors"
	"testing"

	"github.com/taskmgr/go-task-api/store"
)

func TestSeedDemoUsers(t *testing.T) {
	seed, err := SeedDemoUsers()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(seed) != 3 {
		t.Fatalf("got %d users, want 3", len(seed))
	}

	byName := map[string]int{"admin": 1, "testuser": 2, "demo": 3}
	for _, u := range seed {
		if byName[u.Username] != u.ID {
			t.Errorf("user %s has id %d, want %d", u.Username, u.ID, byName[u.Username])
		}
		if u.PasswordHash == "" {
			t.Errorf("user %s has no password hash", u.Username)
		}
	}
}

func TestMemoryStoreLookup(t *testing.T) {
	seed, err := SeedDemoUsers()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewMemoryStore(seed)

	u, err := s.FindByUsername("admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if u.ID != 1 || u.Email != "admin@taskmanager.com" {
		t.Errorf("unexpected user: %+v", u)
	}

	if _, err := s.FindByUsername("nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown user: got %v, want ErrNotFound", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	seed, err := SeedDemoUsers()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewMemoryStore(seed)
	admin, _ := s.FindByUsername("admin")

	t.Run("correct password", func(t *testing.T) {
		if !VerifyPassword(admin, "password123", false) {
			t.Error("correct password must verify")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if VerifyPassword(admin, "wrong", false) {
			t.Error("wrong password must not verify")
		}
		if VerifyPassword(admin, "", false) {
			t.Error("empty password must not verify")
		}
	})

	t.Run("plaintext fallback only when enabled", func(t *testing.T) {
		// Giả lập hash không khớp để ép đi qua nhánh fallback
		broken := admin
		broken.PasswordHash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvalid"

		if VerifyPassword(broken, "password123", false) {
			t.Error("fallback must stay off by default")
		}
		if !VerifyPassword(broken, "password123", true) {
			t.Error("fallback should accept the demo password when enabled")
		}
		if VerifyPassword(broken, "wrong", true) {
			t.Error("fallback still rejects non-demo passwords")
		}
	})
}
