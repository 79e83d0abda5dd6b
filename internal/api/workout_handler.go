package api

import (
	"errors"
	"net/http"
	"strconv"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// ExerciseInput is one exercise within a workout creation request.
type ExerciseInput struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// CreateWorkoutRequest defines the expected JSON for logging a workout.
// Exercises are optional; omitting them logs the workout alone.
type CreateWorkoutRequest struct {
	Name      string          `json:"name" binding:"required"`
	Date      string          `json:"date" binding:"required"`
	Duration  int             `json:"duration"`
	Calories  int             `json:"calories"`
	Exercises []ExerciseInput `json:"exercises"`
}

// WorkoutResponse is the DTO for a workout in the list response.
// Exercises are not included here.
type WorkoutResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
}

// ExerciseResponse is the DTO for one exercise of a workout.
type ExerciseResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutDetailResponse is the DTO for a single workout with exercises.
type WorkoutDetailResponse struct {
	WorkoutResponse
	Exercises []ExerciseResponse `json:"exercises"`
}

func mapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:       w.ID,
		Name:     w.Name,
		Date:     w.Date,
		Duration: w.Duration,
		Calories: w.Calories,
	}
}

func mapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = mapWorkoutToResponse(&workouts[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout logs a new workout with its exercises.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercises := make([]domain.Exercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.Exercise{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
		}
	}

	id, err := h.workoutService.LogWorkout(c.Request.Context(), req.Name, req.Date, req.Duration, req.Calories, exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid workout: name is required and date must be YYYY-MM-DD.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListWorkouts returns all workouts, most recent date first.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	if workouts == nil {
		c.JSON(http.StatusOK, []WorkoutResponse{})
		return
	}
	c.JSON(http.StatusOK, mapWorkoutsToResponse(workouts))
}

// GetWorkout returns one workout with its exercises.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return
	}

	workout, exercises, err := h.workoutService.GetWorkoutDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}

	resp := WorkoutDetailResponse{
		WorkoutResponse: mapWorkoutToResponse(workout),
		Exercises:       make([]ExerciseResponse, len(exercises)),
	}
	for i, ex := range exercises {
		resp.Exercises[i] = ExerciseResponse{
			ID:     ex.ID,
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
		}
	}
	c.JSON(http.StatusOK, resp)
}
