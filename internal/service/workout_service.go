package service

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutService handles logging and listing training sessions.
type WorkoutService interface {
	// LogWorkout persists a workout with its exercises and returns the
	// new workout ID. The workout and all exercises persist together or
	// not at all.
	LogWorkout(ctx context.Context, name, date string, duration, calories int, exercises []domain.Exercise) (int64, error)
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkoutDetail(ctx context.Context, id int64) (*domain.Workout, []domain.Exercise, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) LogWorkout(ctx context.Context, name, date string, duration, calories int, exercises []domain.Exercise) (int64, error) {
	if name == "" {
		return 0, ErrValidationFailed
	}
	// The weekly aggregation matches dates by string equality, so an
	// unparseable date would never show up in any chart.
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return 0, ErrValidationFailed
	}

	workout := &domain.Workout{
		Name:     name,
		Date:     date,
		Duration: duration,
		Calories: calories,
	}

	return s.workoutRepo.Create(ctx, workout, exercises)
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

func (s *workoutService) GetWorkoutDetail(ctx context.Context, id int64) (*domain.Workout, []domain.Exercise, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}

	exercises, err := s.workoutRepo.ExercisesByWorkoutID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return workout, exercises, nil
}
