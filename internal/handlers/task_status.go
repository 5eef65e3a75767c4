package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/assignment-api/internal/dto"
	apierrors "github.com/yukikurage/assignment-api/internal/errors"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/services"
	"github.com/yukikurage/assignment-api/internal/utils"
)

type TaskStatusHandler struct {
	service services.TaskStatusServiceInterface
}

func NewTaskStatusHandler(service services.TaskStatusServiceInterface) *TaskStatusHandler {
	return &TaskStatusHandler{
		service: service,
	}
}

// ListTaskStatuses returns every status
// @Summary List task statuses
// @Tags task-statuses
// @Produce json
// @Success 200 {array} models.TaskStatus
// @Router /tasks_statuses [get]
func (h *TaskStatusHandler) ListTaskStatuses(c *gin.Context) {
	statuses, err := h.service.List(c.Request.Context())
	if err != nil {
		logListFailure(c, "list task statuses", err)
		statuses = []models.TaskStatus{}
	}

	c.JSON(http.StatusOK, statuses)
}

// GetTaskStatus returns a specific status by ID
// @Summary Get a task status
// @Tags task-statuses
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {object} models.TaskStatus
// @Failure 404 {object} apierrors.APIError
// @Router /tasks_statuses/{id} [get]
func (h *TaskStatusHandler) GetTaskStatus(c *gin.Context) {
	id, ok := utils.ParseInt32Param(c, "id")
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	status, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondAbsent(c, "get task status", err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// CreateTaskStatus creates a new status; its id is assigned by the store
// @Summary Create a task status
// @Tags task-statuses
// @Accept json
// @Produce json
// @Param body body dto.TaskStatusRequest true "Status"
// @Success 200 {object} models.TaskStatus
// @Failure 400 {object} apierrors.APIError
// @Failure 404 {object} apierrors.APIError
// @Router /tasks_statuses [post]
func (h *TaskStatusHandler) CreateTaskStatus(c *gin.Context) {
	var req dto.TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	status, err := h.service.Create(c.Request.Context(), req.ToNewTaskStatus())
	if err != nil {
		respondAbsent(c, "create task status", err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// UpdateTaskStatus renames an existing status
// @Summary Rename a task status
// @Tags task-statuses
// @Accept json
// @Produce json
// @Param id path int true "Status ID"
// @Param body body dto.TaskStatusRequest true "Status"
// @Success 200 {object} models.TaskStatus
// @Failure 400 {object} apierrors.APIError
// @Failure 404 {object} apierrors.APIError
// @Router /tasks_statuses/{id} [put]
func (h *TaskStatusHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := utils.ParseInt32Param(c, "id")
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	var req dto.TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	status, err := h.service.Update(c.Request.Context(), id, req.ToNewTaskStatus())
	if err != nil {
		respondAbsent(c, "update task status", err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// DeleteTaskStatus deletes a status
// @Summary Delete a task status
// @Tags task-statuses
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {integer} int
// @Failure 404 {object} apierrors.APIError
// @Router /tasks_statuses/{id} [delete]
func (h *TaskStatusHandler) DeleteTaskStatus(c *gin.Context) {
	id, ok := utils.ParseInt32Param(c, "id")
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	count, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondAbsent(c, "delete task status", err)
		return
	}

	c.JSON(http.StatusOK, count)
}
