package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmgr/go-task-api/events"
	"github.com/taskmgr/go-task-api/middleware"
	"github.com/taskmgr/go-task-api/models"
	"github.com/taskmgr/go-task-api/store"
	"github.com/taskmgr/go-task-api/utils"
)

// HandleListTasks godoc
// @Summary Liệt kê task của user hiện tại, có lọc và phân trang
// @Tags tasks
// @Produce json
// @Param page query int false "Trang, mặc định 1"
// @Param limit query int false "Số task mỗi trang, mặc định 10"
// @Param priority query string false "Lọc theo priority: low, medium, high"
// @Param completed query bool false "Lọc theo trạng thái hoàn thành"
// @Param search query string false "Tìm trong title và description"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /items [get]
func (h *Handler) HandleListTasks(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	tasks, err := h.Tasks.ListByUser(claims.ID)
	if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while retrieving tasks")
	}

	// Lọc trước, phân trang sau
	if priority := c.Query("priority"); priority != "" {
		tasks = filterTasks(tasks, func(t models.Task) bool { return t.Priority == priority })
	}
	if completed := c.Query("completed"); completed != "" {
		want := completed == "true"
		tasks = filterTasks(tasks, func(t models.Task) bool { return t.Completed == want })
	}
	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		tasks = filterTasks(tasks, func(t models.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle)
		})
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	total := len(tasks)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return utils.Success(c, 200, "Tasks retrieved successfully", fiber.Map{
		"tasks": tasks[start:end],
		"pagination": models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

// HandleCreateTask godoc
// @Summary Tạo task mới cho user hiện tại
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body models.CreateTaskInput true "Task mới"
// @Security BearerAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /items [post]
func (h *Handler) HandleCreateTask(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	input := c.Locals(middleware.CreateInputKey).(*models.CreateTaskInput)

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now().UTC()
	task := models.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		Completed:   false,
		UserID:      claims.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := h.Tasks.Create(task)
	if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while creating the task")
	}

	h.Bus.Publish(events.ActionCreate, created)

	return utils.Success(c, 201, "Task created successfully", fiber.Map{"task": created})
}

// HandleUpdateTask godoc
// @Summary Cập nhật một phần task của user hiện tại
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Id của task"
// @Param body body models.UpdateTaskInput true "Các field cần đổi"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /items/{id} [put]
func (h *Handler) HandleUpdateTask(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, 400, utils.ErrValidation, "Invalid task ID format")
	}

	// Kiểm tra tồn tại trước, quyền sở hữu sau
	task, err := h.Tasks.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.Error(c, 404, utils.ErrTaskNotFound, "Task not found")
	} else if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while updating the task")
	}
	if task.UserID != claims.ID {
		return utils.Error(c, 403, utils.ErrForbidden, "You can only update your own tasks")
	}

	// Chỉ thay field có mặt trong body, updatedAt luôn được làm mới
	input := c.Locals(middleware.UpdateInputKey).(*models.UpdateTaskInput)
	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil && *input.Priority != "" {
		// Chuỗi rỗng coi như không gửi, giữ nguyên priority cũ
		task.Priority = *input.Priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := h.Tasks.Update(task); err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while updating the task")
	}

	h.Bus.Publish(events.ActionUpdate, task)

	return utils.Success(c, 200, "Task updated successfully", fiber.Map{"task": task})
}

// HandleDeleteTask godoc
// @Summary Xóa task của user hiện tại
// @Tags tasks
// @Produce json
// @Param id path int true "Id của task"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 403 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /items/{id} [delete]
func (h *Handler) HandleDeleteTask(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Error(c, 400, utils.ErrValidation, "Invalid task ID format")
	}

	task, err := h.Tasks.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.Error(c, 404, utils.ErrTaskNotFound, "Task not found")
	} else if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while deleting the task")
	}
	if task.UserID != claims.ID {
		return utils.Error(c, 403, utils.ErrForbidden, "You can only delete your own tasks")
	}

	deleted, err := h.Tasks.Delete(id)
	if err != nil {
		return utils.Error(c, 500, utils.ErrInternalServer, "An error occurred while deleting the task")
	}

	h.Bus.Publish(events.ActionDelete, deleted)

	return utils.Success(c, 200, "Task deleted successfully", fiber.Map{"task": deleted})
}

func filterTasks(tasks []models.Task, keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
