package routine

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymcoach/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterCoachRoutes(rg *gin.RouterGroup) {
	rg.POST("/routines", h.CreateRoutine)
	rg.GET("/routines", h.ListCoachRoutines)
	rg.GET("/routines/:id", h.GetRoutine)
	rg.PUT("/routines/:id", h.UpdateRoutine)
	rg.PUT("/routines/:id/exercises", h.ReplaceExercises)
	rg.POST("/routines/:id/assign", h.AssignRoutine)
	rg.DELETE("/routines/:id", h.DeleteRoutine)
}

func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.GET("/routines", h.ListClientAssignments)
	rg.GET("/routines/active", h.ActiveRoutine)
	rg.PUT("/routines/:id/complete", h.CompleteRoutine)
	rg.GET("/routine-assignments/:id/days", h.TrainingDays)
}

func (h *Handler) CreateRoutine(c *gin.Context) {
	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	r, assignment, err := h.service.CreateRoutine(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create routine")
		return
	}

	data := gin.H{"routine": r}
	if assignment != nil {
		data["assignment"] = assignment
	}
	response.Success(c, http.StatusCreated, data)
}

func (h *Handler) ListCoachRoutines(c *gin.Context) {
	items, err := h.service.ListCoachRoutines(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to list routines")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"routines": items})
}

func (h *Handler) GetRoutine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	details, err := h.service.GetRoutine(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err, "Failed to load routine")
		return
	}
	response.Success(c, http.StatusOK, details)
}

func (h *Handler) UpdateRoutine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	var req UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	r, err := h.service.UpdateRoutine(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update routine")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"routine": r})
}

func (h *Handler) ReplaceExercises(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	var req ReplaceExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	lines, err := h.service.ReplaceExercises(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to replace exercises")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exercises": lines})
}

func (h *Handler) AssignRoutine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	var req AssignRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	details, err := h.service.AssignRoutine(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to assign routine")
		return
	}
	response.Success(c, http.StatusOK, details)
}

func (h *Handler) DeleteRoutine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	if err := h.service.DeleteRoutine(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err, "Failed to delete routine")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListClientAssignments(c *gin.Context) {
	items, err := h.service.ListClientAssignments(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to list routines")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignments": items})
}

func (h *Handler) ActiveRoutine(c *gin.Context) {
	details, assignment, err := h.service.ActiveRoutine(c.Request.Context(), c.GetInt64("user_id"), c.Query("day"))
	if err != nil {
		h.writeError(c, err, "Failed to load active routine")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"routine":    details,
		"assignment": assignment,
	})
}

func (h *Handler) CompleteRoutine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid routine id")
		return
	}

	if err := h.service.CompleteRoutine(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err, "Failed to complete routine")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed": true})
}

func (h *Handler) TrainingDays(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ValidationError(c, "Invalid assignment id")
		return
	}

	days, err := h.service.TrainingDays(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err, "Failed to list training days")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"training_days": days})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation, ErrEmptyExercises, ErrExerciseNotFound, ErrInvalidWeekday:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrRoutineNotFound, ErrNoCoachProfile, ErrNoActiveRoutine, ErrAssignmentMissing:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrForbidden, ErrClientNotAssigned:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case ErrAssignConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
