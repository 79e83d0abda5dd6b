package domain

// DailyStat is a derived (date, total calories) pair for one calendar
// day. It is recomputed per request and never persisted.
type DailyStat struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Calories int    `json:"calories"`
}
