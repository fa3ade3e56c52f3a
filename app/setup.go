package app

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/taskmgr/go-task-api/config"
	"github.com/taskmgr/go-task-api/events"
	"github.com/taskmgr/go-task-api/handlers"
	"github.com/taskmgr/go-task-api/router"
	"github.com/taskmgr/go-task-api/store"
	"github.com/taskmgr/go-task-api/token"
	"github.com/taskmgr/go-task-api/users"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Seed tài khoản demo rồi chọn backend lưu trữ
	seedUsers, err := users.SeedDemoUsers()
	if err != nil {
		return err
	}

	var taskStore store.TaskStore
	var userStore store.UserStore

	switch backend := config.TasksBackend(); backend {
	case "postgres":
		pg, err := store.OpenPostgres(config.PostgresURI())
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.Bootstrap(seedUsers); err != nil {
			return err
		}
		taskStore, userStore = pg, pg
		log.Println("Connected to PostgreSQL successfully")
	case "memory":
		taskStore = store.NewSeededMemoryTaskStore()
		userStore = users.NewMemoryStore(seedUsers)
	default:
		return fmt.Errorf("unknown TASKS_BACKEND %q", backend)
	}

	tokens := token.NewService(config.JWTSecret())
	bus := events.NewBus()

	h := handlers.New(taskStore, userStore, tokens, bus)
	h.AllowPlaintextLogin = config.AllowPlaintextLogin()

	// Cầu nối MQTT chỉ chạy khi có MQTT_URL
	if url := config.MQTTURL(); url != "" {
		if err := events.StartMQTTBridge(bus, url); err != nil {
			return err
		}
	}

	// Tạo ứng dụng Fiber
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",                           // Cho phép tất cả các nguồn (có thể điều chỉnh)
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", // Các phương thức được phép
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Swagger phải mount trước route 404 bắt tất cả
	config.AddSwaggerRoutes(app)

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, h)

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + config.Port())
}
