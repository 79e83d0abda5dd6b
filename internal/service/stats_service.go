package service

import (
	"context"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// statsWindowDays is the trailing window of the weekly activity chart,
// today inclusive.
const statsWindowDays = 7

// StatsService computes derived activity statistics. Nothing here is
// persisted; every call recomputes from workout rows.
type StatsService interface {
	// WeeklyStats returns one entry per calendar day for the trailing
	// 7 days ending today, oldest first. Days without workouts are
	// included with zero calories.
	WeeklyStats(ctx context.Context) ([]domain.DailyStat, error)
}

type statsService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(workoutRepo repository.WorkoutRepository) StatsService {
	return &statsService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

func (s *statsService) WeeklyStats(ctx context.Context) ([]domain.DailyStat, error) {
	today := s.now()
	from := today.AddDate(0, 0, -(statsWindowDays - 1))

	sums, err := s.workoutRepo.CaloriesByDateRange(
		ctx,
		from.Format(domain.DateLayout),
		today.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.DailyStat, 0, statsWindowDays)
	for i := 0; i < statsWindowDays; i++ {
		date := from.AddDate(0, 0, i).Format(domain.DateLayout)
		stats = append(stats, domain.DailyStat{
			Date:     date,
			Calories: sums[date],
		})
	}
	return stats, nil
}
