// Package events phát tán sự kiện thay đổi task trong process,
// cấp dữ liệu cho luồng SSE và cầu nối MQTT.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskmgr/go-task-api/models"
)

// Hành động trên task sinh ra sự kiện
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event mô tả một thay đổi trên task
type Event struct {
	ID     string      `json:"id"`
	Action string      `json:"action"`
	Task   models.Task `json:"task"`
	At     time.Time   `json:"at"`
}

type subscriber struct {
	userID int // 0 = nhận mọi sự kiện
	ch     chan Event
}

// Bus giữ danh sách subscriber, khóa bằng mutex như sessionsLock
type Bus struct {
	mu   sync.Mutex
	subs []*subscriber
}

// NewBus tạo bus trống
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe đăng ký nhận sự kiện của một user, trả về kênh và hàm hủy đăng ký
func (b *Bus) Subscribe(userID int) (<-chan Event, func()) {
	return b.add(userID)
}

// SubscribeAll đăng ký nhận mọi sự kiện, dùng cho cầu nối MQTT
func (b *Bus) SubscribeAll() (<-chan Event, func()) {
	return b.add(0)
}

func (b *Bus) add(userID int) (<-chan Event, func()) {
	s := &subscriber{userID: userID, ch: make(chan Event, 16)}

	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	return s.ch, func() { b.remove(s) }
}

func (b *Bus) remove(s *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, cur := range b.subs {
		if cur == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(s.ch)
			return
		}
	}
}

// Publish gửi sự kiện tới các subscriber quan tâm, không chặn publisher
func (b *Bus) Publish(action string, task models.Task) {
	ev := Event{
		ID:     uuid.NewString(),
		Action: action,
		Task:   task,
		At:     time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		if s.userID != 0 && s.userID != task.UserID {
			continue
		}
		select {
		case s.ch <- ev:
		default: // subscriber chậm thì bỏ qua sự kiện
		}
	}
}
