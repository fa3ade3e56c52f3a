package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/taskmgr/go-task-api/middleware"
)

func formatSSEMessage(eventType string, data any) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		return "", err
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("event: %s\n", eventType))
	sb.WriteString(fmt.Sprintf("retry: %d\n", 15000))
	sb.WriteString(fmt.Sprintf("data: %v\n\n", buf.String()))

	return sb.String(), nil
}

// HandleTaskEvents godoc
// @Summary Luồng SSE các thay đổi task của user hiện tại
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Router /events [get]
func (h *Handler) HandleTaskEvents(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	// Chỉ nhận sự kiện trên task thuộc về user này
	ch, unsubscribe := h.Bus.Subscribe(claims.ID)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		keepAliveTickler := time.NewTicker(15 * time.Second)
		defer keepAliveTickler.Stop()

		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return
				}
				msg, err := formatSSEMessage("task-event", ev)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprint(w, msg); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepAliveTickler.C:
				fmt.Fprint(w, ":keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
