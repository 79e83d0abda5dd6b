package service

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ProfileService manages the singleton user profile.
type ProfileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, name string, weight, height float64, goal string) (*domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile overwrites the whole profile. Numeric ranges are not
// checked; the store accepts whatever the user enters.
func (s *profileService) UpdateProfile(ctx context.Context, name string, weight, height float64, goal string) (*domain.Profile, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	profile := &domain.Profile{
		Name:   name,
		Weight: weight,
		Height: height,
		Goal:   goal,
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.profileRepo.Get(ctx)
}
