package domain

import "time"

// Exercise is one movement performed within a workout. Exercises are
// created only as part of their workout's creation and always reference
// an existing workout.
type Exercise struct {
	ID        int64     `json:"id"`
	WorkoutID int64     `json:"workoutId"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
