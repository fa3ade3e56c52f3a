package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/events"
	"github.com/taskmgr/go-task-api/handlers"
	"github.com/taskmgr/go-task-api/models"
	"github.com/taskmgr/go-task-api/router"
	"github.com/taskmgr/go-task-api/store"
	"github.com/taskmgr/go-task-api/token"
	"github.com/taskmgr/go-task-api/users"
)

const testSecret = "test-secret"

// newTestApp dựng một app đầy đủ với store trong bộ nhớ đã seed
func newTestApp(t *testing.T) (*fiber.App, *handlers.Handler) {
	t.Helper()

	seed, err := users.SeedDemoUsers()
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}

	h := handlers.New(
		store.NewSeededMemoryTaskStore(),
		users.NewMemoryStore(seed),
		token.NewService(testSecret),
		events.NewBus(),
	)

	app := fiber.New()
	router.SetupRoutes(app, h)
	return app, h
}

// doJSON gửi một request JSON và giải mã envelope trả về
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) (int, models.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out models.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response of %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

// login đăng nhập và trả về token
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	status, resp := doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	if status != 200 {
		t.Fatalf("login as %s: got status %d, want 200 (error=%s)", username, status, resp.Error)
	}

	data := dataMap(t, resp)
	tok, _ := data["token"].(string)
	if tok == "" {
		t.Fatalf("login as %s: no token in response", username)
	}
	return tok
}

// dataMap ép resp.Data về map để kiểm tra từng field
func dataMap(t *testing.T, resp models.Response) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	return m
}

// taskField đọc một field của data["task"]
func taskField(t *testing.T, resp models.Response, field string) interface{} {
	t.Helper()
	task, ok := dataMap(t, resp)["task"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no task object")
	}
	return task[field]
}

// createTask tạo task và trả về id của nó
func createTask(t *testing.T, app *fiber.App, bearer, title string) int {
	t.Helper()
	status, resp := doJSON(t, app, "POST", "/api/items", bearer, fiber.Map{"title": title})
	if status != 201 {
		t.Fatalf("create task %q: got status %d, want 201", title, status)
	}
	id, ok := taskField(t, resp, "id").(float64)
	if !ok {
		t.Fatalf("created task has no numeric id")
	}
	return int(id)
}

func itemPath(id int) string {
	return fmt.Sprintf("/api/items/%d", id)
}
