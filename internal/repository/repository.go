package repository

import (
	"context"

	"fittrack/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for the singleton profile row.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	// Update overwrites all four user-editable fields. There is no
	// partial update.
	Update(ctx context.Context, profile *domain.Profile) error
}

// WorkoutRepository defines the interface for workout and exercise data.
type WorkoutRepository interface {
	// Create inserts the workout and its exercises in one transaction,
	// in the supplied order, and returns the new workout ID. On any
	// failure nothing is persisted.
	Create(ctx context.Context, workout *domain.Workout, exercises []domain.Exercise) (int64, error)
	// List returns all workouts ordered by date descending, newest
	// insertions first within a date.
	List(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	// ExercisesByWorkoutID returns a workout's exercises in insertion order.
	ExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]domain.Exercise, error)
	// CaloriesByDateRange sums calories per calendar date for workouts
	// dated between from and to inclusive. Dates with no workouts are
	// absent from the result.
	CaloriesByDateRange(ctx context.Context, from, to string) (map[string]int, error)
}
