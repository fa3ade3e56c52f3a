// Package handlers chứa các HTTP handler của API.
package handlers

import (
	"github.com/taskmgr/go-task-api/events"
	"github.com/taskmgr/go-task-api/store"
	"github.com/taskmgr/go-task-api/token"
)

// Handler gom các phụ thuộc dùng chung cho mọi handler
type Handler struct {
	Tasks  store.TaskStore
	Users  store.UserStore
	Tokens *token.Service
	Bus    *events.Bus

	// AllowPlaintextLogin bật fallback so sánh mật khẩu plaintext cho demo
	AllowPlaintextLogin bool
}

// New tạo Handler với các store và service đã khởi tạo
func New(tasks store.TaskStore, users store.UserStore, tokens *token.Service, bus *events.Bus) *Handler {
	return &Handler{
		Tasks:  tasks,
		Users:  users,
		Tokens: tokens,
		Bus:    bus,
	}
}
