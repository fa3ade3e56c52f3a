package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver cho database/sql

	"github.com/taskmgr/go-task-api/models"
)

// PostgresStore là backend PostgreSQL, cài đặt cả TaskStore lẫn UserStore
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres mở kết nối PostgreSQL và kiểm tra bằng ping
func OpenPostgres(uri string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close đóng kết nối với PostgreSQL
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

// Bootstrap tạo bảng nếu chưa tồn tại và nạp dữ liệu mẫu vào bảng trống
func (p *PostgresStore) Bootstrap(seedUsers []models.User) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description VARCHAR(1000) NOT NULL DEFAULT '',
		priority VARCHAR(10) NOT NULL DEFAULT 'medium',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`
	if _, err := p.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	for _, u := range seedUsers {
		_, err := p.db.Exec(
			"INSERT INTO users (id, username, password_hash, email) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
			u.ID, u.Username, u.PasswordHash, u.Email,
		)
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Username, err)
		}
	}

	// Chỉ nạp task mẫu khi bảng còn trống
	var count int
	if err := p.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if count == 0 {
		for _, t := range SeedTasks(time.Now().UTC()) {
			_, err := p.db.Exec(
				`INSERT INTO tasks (id, title, description, priority, completed, user_id, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				t.ID, t.Title, t.Description, t.Priority, t.Completed, t.UserID, t.CreatedAt, t.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to seed task %d: %w", t.ID, err)
			}
		}
	}

	return nil
}

func (p *PostgresStore) ListByUser(userID int) ([]models.Task, error) {
	rows, err := p.db.Query(
		`SELECT id, title, description, priority, completed, user_id, created_at, updated_at
		 FROM tasks WHERE user_id = $1 ORDER BY id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (p *PostgresStore) Get(id int) (models.Task, error) {
	var t models.Task
	err := p.db.QueryRow(
		`SELECT id, title, description, priority, completed, user_id, created_at, updated_at
		 FROM tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	} else if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (p *PostgresStore) Create(task models.Task) (models.Task, error) {
	// id kế tiếp sinh ngay trong câu INSERT để không tái sử dụng id đã xóa
	err := p.db.QueryRow(
		`INSERT INTO tasks (id, title, description, priority, completed, user_id, created_at, updated_at)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM tasks), $1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		task.Title, task.Description, task.Priority, task.Completed, task.UserID, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (p *PostgresStore) Update(task models.Task) error {
	res, err := p.db.Exec(
		`UPDATE tasks SET title=$1, description=$2, priority=$3, completed=$4, updated_at=$5 WHERE id=$6`,
		task.Title, task.Description, task.Priority, task.Completed, task.UpdatedAt, task.ID,
	)
	if err != nil {
		return err
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) Delete(id int) (models.Task, error) {
	task, err := p.Get(id)
	if err != nil {
		return models.Task{}, err
	}
	if _, err := p.db.Exec("DELETE FROM tasks WHERE id = $1", id); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (p *PostgresStore) FindByUsername(username string) (models.User, error) {
	var u models.User
	err := p.db.QueryRow(
		"SELECT id, username, password_hash, email FROM users WHERE username = $1", username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	} else if err != nil {
		return models.User{}, err
	}
	return u, nil
}
