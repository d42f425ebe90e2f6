package models

import "time"

// JournalEntry is a single diary record. DayKey is derived from CreatedAt
// when the entry is built, so an entry always lands in the calendar day it
// was written on.
type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"timestamp"`
	DayKey    string    `json:"date"`
}

// Stats summarizes a user's journaling activity.
type Stats struct {
	// TotalEntries counts every entry across all days.
	TotalEntries int
	// CurrentStreak is the number of consecutive calendar days, ending
	// today, with at least one entry.
	CurrentStreak int
	// AverageRating is the mean of the day ratings recorded within the
	// trailing 30 days. Days without a rating are excluded. Zero when no
	// day in the window was rated.
	AverageRating float64
	// RatedDays is how many days in the window contributed to AverageRating.
	RatedDays int
}
