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

type AssignmentHandler struct {
	service services.AssignmentServiceInterface
}

func NewAssignmentHandler(service services.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
	}
}

// ListAssignments returns every assignment. A failed read yields an empty array.
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Success 200 {array} models.Assignment
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		logListFailure(c, "list assignments", err)
		assignments = []models.Assignment{}
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignment returns the assignment of one user to one task
// @Summary Get an assignment
// @Tags assignments
// @Produce json
// @Param user_id path int true "User ID"
// @Param task_id path int true "Task ID"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} apierrors.APIError
// @Router /assignments/{user_id}/{task_id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	key, ok := assignmentKey(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	assignment, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		respondAbsent(c, "get assignment", err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CreateAssignment creates a new assignment
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param body body dto.AssignmentRequest true "Assignment"
// @Success 200 {object} models.Assignment
// @Failure 400 {object} apierrors.APIError
// @Failure 404 {object} apierrors.APIError
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	assignment, err := h.service.Create(c.Request.Context(), req.ToNewAssignment())
	if err != nil {
		respondAbsent(c, "create assignment", err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// UpdateAssignment overwrites the assignment addressed by the path with the body.
// The body's user_id and task_id are written as well, so the row may change key.
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param task_id path int true "Task ID"
// @Param body body dto.AssignmentRequest true "Assignment"
// @Success 200 {object} models.Assignment
// @Failure 400 {object} apierrors.APIError
// @Failure 404 {object} apierrors.APIError
// @Router /assignments/{user_id}/{task_id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	key, ok := assignmentKey(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	assignment, err := h.service.Update(c.Request.Context(), key, req.ToNewAssignment())
	if err != nil {
		respondAbsent(c, "update assignment", err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment deletes an assignment and returns the number of removed rows
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param user_id path int true "User ID"
// @Param task_id path int true "Task ID"
// @Success 200 {integer} int
// @Failure 404 {object} apierrors.APIError
// @Router /assignments/{user_id}/{task_id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	key, ok := assignmentKey(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	count, err := h.service.Delete(c.Request.Context(), key)
	if err != nil {
		respondAbsent(c, "delete assignment", err)
		return
	}

	c.JSON(http.StatusOK, count)
}

func assignmentKey(c *gin.Context) (models.AssignmentKey, bool) {
	userID, ok := utils.ParseInt32Param(c, "user_id")
	if !ok {
		return models.AssignmentKey{}, false
	}
	taskID, ok := utils.ParseInt32Param(c, "task_id")
	if !ok {
		return models.AssignmentKey{}, false
	}
	return models.AssignmentKey{UserID: userID, TaskID: taskID}, true
}
