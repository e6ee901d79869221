package domain

import "time"

var Moods = []string{"Happy", "Okay", "Sad", "Stressed", "Overwhelmed"}

var CheckInSymptoms = []string{
	"Trouble sleeping",
	"Feeling anxious",
	"Low energy",
	"Mood swings",
	"Lack of motivation",
	"Irritability",
}

type CheckInDraft struct {
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Journal  string   `json:"journal"`
}

// CheckInEntry is immutable once created.
type CheckInEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Symptoms  []string  `json:"symptoms"`
	Journal   string    `json:"journal"`
	CreatedAt time.Time `json:"created_at"`
}
