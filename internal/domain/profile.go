package domain

import "time"

// Profile is the single user's identity and goal metadata.
// Exactly one profile row exists; it is seeded at startup and only
// ever overwritten, never deleted.
type Profile struct {
	ID        int64     `json:"-"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"` // kilograms
	Height    float64   `json:"height"` // centimeters
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultProfile is inserted on first startup if no profile exists yet.
func DefaultProfile() Profile {
	return Profile{
		Name:   "Atleta",
		Weight: 75,
		Height: 175,
		Goal:   "Ganhar massa muscular",
	}
}
