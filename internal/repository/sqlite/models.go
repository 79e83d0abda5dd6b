package sqlite

import "time"

type ProfileModel struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Weight    float64 `gorm:"not null"`
	Height    float64 `gorm:"not null"`
	Goal      string  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string { return "profiles" }

type WorkoutModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Date      string `gorm:"not null;index"`
	Duration  int    `gorm:"not null"`
	Calories  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WorkoutModel) TableName() string { return "workouts" }

type ExerciseModel struct {
	ID        int64   `gorm:"primaryKey"`
	WorkoutID int64   `gorm:"not null;index"`
	Name      string  `gorm:"not null"`
	Sets      int     `gorm:"not null"`
	Reps      int     `gorm:"not null"`
	Weight    float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ExerciseModel) TableName() string { return "exercises" }
