package service

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorkoutRepo satisfies repository.WorkoutRepository for stats tests.
type fakeWorkoutRepo struct {
	sums     map[string]int
	lastFrom string
	lastTo   string
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout, exercises []domain.Exercise) (int64, error) {
	return 0, nil
}

func (f *fakeWorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) ExercisesByWorkoutID(ctx context.Context, workoutID int64) ([]domain.Exercise, error) {
	return nil, nil
}

func (f *fakeWorkoutRepo) CaloriesByDateRange(ctx context.Context, from, to string) (map[string]int, error) {
	f.lastFrom = from
	f.lastTo = to
	return f.sums, nil
}

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(domain.DateLayout, date)
		return t
	}
}

func TestWeeklyStatsEmptyStore(t *testing.T) {
	repo := &fakeWorkoutRepo{sums: map[string]int{}}
	s := &statsService{workoutRepo: repo, now: fixedClock("2024-06-07")}

	stats, err := s.WeeklyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 7)

	assert.Equal(t, "2024-06-01", repo.lastFrom)
	assert.Equal(t, "2024-06-07", repo.lastTo)

	assert.Equal(t, "2024-06-01", stats[0].Date, "oldest first")
	assert.Equal(t, "2024-06-07", stats[6].Date, "today last")
	for _, stat := range stats {
		assert.Zero(t, stat.Calories)
	}
}

func TestWeeklyStatsFillsMissingDays(t *testing.T) {
	repo := &fakeWorkoutRepo{sums: map[string]int{
		"2024-06-01": 300,
		"2024-06-04": 450,
		"2024-06-07": 120,
	}}
	s := &statsService{workoutRepo: repo, now: fixedClock("2024-06-07")}

	stats, err := s.WeeklyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 7)

	byDate := make(map[string]int, len(stats))
	total := 0
	for _, stat := range stats {
		assert.GreaterOrEqual(t, stat.Calories, 0)
		byDate[stat.Date] = stat.Calories
		total += stat.Calories
	}

	assert.Equal(t, 300, byDate["2024-06-01"])
	assert.Equal(t, 0, byDate["2024-06-02"])
	assert.Equal(t, 0, byDate["2024-06-03"])
	assert.Equal(t, 450, byDate["2024-06-04"])
	assert.Equal(t, 120, byDate["2024-06-07"])
	assert.Equal(t, 870, total, "series sums to all in-window calories")
}

func TestWeeklyStatsCrossesMonthBoundary(t *testing.T) {
	repo := &fakeWorkoutRepo{sums: map[string]int{}}
	s := &statsService{workoutRepo: repo, now: fixedClock("2024-03-02")}

	stats, err := s.WeeklyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 7)
	assert.Equal(t, "2024-02-25", stats[0].Date, "leap-year february")
	assert.Equal(t, "2024-03-02", stats[6].Date)
}
