package sqlite

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// sqliteProfileRepository implements repository.ProfileRepository.
type sqliteProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &sqliteProfileRepository{db: db}
}

// Get returns the singleton profile. ErrNotFound only occurs if the
// seed step was skipped.
func (r *sqliteProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	var m ProfileModel
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return mapProfileToDomain(&m), nil
}

// Update overwrites all four user fields of the singleton profile.
// No range validation is applied here; permissive by design.
func (r *sqliteProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	var m ProfileModel
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotFound
		}
		return err
	}

	m.Name = profile.Name
	m.Weight = profile.Weight
	m.Height = profile.Height
	m.Goal = profile.Goal

	return r.db.WithContext(ctx).Save(&m).Error
}

func mapProfileToDomain(m *ProfileModel) *domain.Profile {
	return &domain.Profile{
		ID:        m.ID,
		Name:      m.Name,
		Weight:    m.Weight,
		Height:    m.Height,
		Goal:      m.Goal,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
