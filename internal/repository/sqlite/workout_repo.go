package sqlite

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// sqliteWorkoutRepository implements repository.WorkoutRepository.
type sqliteWorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &sqliteWorkoutRepository{db: db}
}

// Create inserts the workout and its exercises inside one transaction,
// so a failed exercise insert cannot leave an orphaned workout row.
func (r *sqliteWorkoutRepository) Create(ctx context.Context, workout *domain.Workout, exercises []domain.Exercise) (int64, error) {
	if workout.Name == "" || workout.Date == "" {
		return 0, errors.New("workout requires name and date")
	}

	m := WorkoutModel{
		Name:     workout.Name,
		Date:     workout.Date,
		Duration: workout.Duration,
		Calories: workout.Calories,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range exercises {
			em := ExerciseModel{
				WorkoutID: m.ID,
				Name:      exercises[i].Name,
				Sets:      exercises[i].Sets,
				Reps:      exercises[i].Reps,
				Weight:    exercises[i].Weight,
			}
			if err := tx.Create(&em).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return m.ID, nil
}

// List returns all workouts, most recent date first. Ties on the same
// date come back newest insertion first.
func (r *sqliteWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	var models []WorkoutModel
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	workouts := make([]domain.Workout, len(models))
	for i := range models {
		workouts[i] = *mapWorkoutToDomain(&models[i])
	}
	return workouts, nil
}

// GetByID retrieves a single workout.
func (r *sqliteWorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var m WorkoutModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return mapWorkoutToDomain(&m), nil
}

// ExercisesByWorkoutID returns a workout's exercises in insertion order.
func (r *sqliteWorkoutRepository) ExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	var models []ExerciseModel
	err := r.db.WithContext(ctx).
		Where("workout_id = ?", workoutID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, len(models))
	for i := range models {
		exercises[i] = domain.Exercise{
			ID:        models[i].ID,
			WorkoutID: models[i].WorkoutID,
			Name:      models[i].Name,
			Sets:      models[i].Sets,
			Reps:      models[i].Reps,
			Weight:    models[i].Weight,
			CreatedAt: models[i].CreatedAt,
			UpdatedAt: models[i].UpdatedAt,
		}
	}
	return exercises, nil
}

// CaloriesByDateRange sums calories per date over [from, to]. Dates
// without workouts are simply absent; callers fill gaps as needed.
func (r *sqliteWorkoutRepository) CaloriesByDateRange(ctx context.Context, from, to string) (map[string]int, error) {
	type dateSum struct {
		Date  string
		Total int
	}
	var rows []dateSum
	err := r.db.WithContext(ctx).
		Model(&WorkoutModel{}).
		Select("date, SUM(calories) AS total").
		Where("date BETWEEN ? AND ?", from, to).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int, len(rows))
	for _, row := range rows {
		sums[row.Date] = row.Total
	}
	return sums, nil
}

func mapWorkoutToDomain(m *WorkoutModel) *domain.Workout {
	return &domain.Workout{
		ID:        m.ID,
		Name:      m.Name,
		Date:      m.Date,
		Duration:  m.Duration,
		Calories:  m.Calories,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
