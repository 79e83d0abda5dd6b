package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// recentWorkoutsForPrompt caps how many sessions the suggestion prompt
// carries; the model does not need the full history.
const recentWorkoutsForPrompt = 5

// AdviceHandler relays user context to the advice model. Upstream
// failures are reported as a null text payload and never touch the
// record store.
type AdviceHandler struct {
	adviceService  service.AdviceService
	profileService service.ProfileService
	workoutService service.WorkoutService
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(
	adviceService service.AdviceService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
) *AdviceHandler {
	return &AdviceHandler{
		adviceService:  adviceService,
		profileService: profileService,
		workoutService: workoutService,
	}
}

// ChatRequest defines the expected JSON for a coach chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// SuggestWorkout asks the model for a next-workout suggestion built
// from the stored profile and recent sessions.
func (h *AdviceHandler) SuggestWorkout(c *gin.Context) {
	ctx := c.Request.Context()

	// Profile and history are best-effort context for the prompt; a
	// store hiccup here should not block the advice call itself.
	profile, err := h.profileService.GetProfile(ctx)
	if err != nil {
		log.WithError(err).Warn("suggestion prompt built without profile")
		profile = nil
	}
	workouts, err := h.workoutService.ListWorkouts(ctx)
	if err != nil {
		log.WithError(err).Warn("suggestion prompt built without workout history")
		workouts = nil
	}
	if len(workouts) > recentWorkoutsForPrompt {
		workouts = workouts[:recentWorkoutsForPrompt]
	}

	text, err := h.adviceService.SuggestWorkout(ctx, profile, workouts)
	if err != nil {
		log.WithError(err).Error("advice model call failed")
		c.JSON(http.StatusBadGateway, gin.H{"text": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Chat forwards a free-text question to the model.
func (h *AdviceHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	text, err := h.adviceService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		log.WithError(err).Error("advice model call failed")
		c.JSON(http.StatusBadGateway, gin.H{"text": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
