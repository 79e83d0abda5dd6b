package api

import (
	"errors"
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// UpdateProfileRequest defines the expected JSON for replacing the profile.
// Weight and height ranges are deliberately unchecked.
type UpdateProfileRequest struct {
	Name   string  `json:"name" binding:"required"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Goal   string  `json:"goal"`
}

// ProfileResponse is the DTO for returning the profile.
type ProfileResponse struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Goal   string  `json:"goal"`
}

func mapProfileToResponse(p *domain.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		Name:   p.Name,
		Weight: p.Weight,
		Height: p.Height,
		Goal:   p.Goal,
	}
}

// --- Handler Methods ---

// GetProfile returns the singleton profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		}
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// UpdateProfile replaces all four profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	_, err := h.profileService.UpdateProfile(c.Request.Context(), req.Name, req.Weight, req.Height, req.Goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "Profile not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
