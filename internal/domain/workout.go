package domain

import "time"

// DateLayout is the calendar-date format workouts are logged under.
// Dates are compared as strings, so the store never normalizes them.
const DateLayout = "2006-01-02"

// Workout represents one completed training session. Workouts are
// immutable once logged; there is no update or delete.
type Workout struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`     // YYYY-MM-DD
	Duration  int       `json:"duration"` // minutes
	Calories  int       `json:"calories"` // kcal
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
