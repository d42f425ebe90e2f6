package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"moodmate/internal/journal"
)

// Write reads a diary entry body and appends it to today's entries.
func (a *App) Write(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.journal.AddEntry(ctx, a.owner(), text)
	if err != nil {
		if errors.Is(err, journal.ErrEmptyEntry) {
			fmt.Println("Nothing to add")
			return nil
		}
		return err
	}

	fmt.Printf("Saved to %s\n", entry.DayKey)
	return nil
}

// Show prints the entries for one day (today when no day is given).
func (a *App) Show(ctx context.Context, day string) error {
	if day == "" {
		day = a.journal.Today()
	}

	entries := a.journal.EntriesForDay(ctx, a.owner(), day)
	if len(entries) == 0 {
		fmt.Printf("No entries for %s\n", day)
		return nil
	}

	fmt.Println(day)
	for _, entry := range entries {
		fmt.Printf("  %s  %s\n", entry.CreatedAt.Format("15:04"), entry.Text)
	}
	return nil
}

// Days lists the days that have entries, most recent first.
func (a *App) Days(ctx context.Context) error {
	days := a.journal.DaysWithEntries(ctx, a.owner())
	if len(days) == 0 {
		fmt.Println("The journal is empty")
		return nil
	}
	for _, day := range days {
		fmt.Printf("%s  (%d entries)\n", day, len(a.journal.EntriesForDay(ctx, a.owner(), day)))
	}
	return nil
}

// Rate records today's mood rating. Out-of-range values are clamped to
// 1–10 by the journal service.
func (a *App) Rate(ctx context.Context, value string) error {
	rating, err := strconv.Atoi(value)
	if err != nil {
		fmt.Println("Usage: rate <1-10>")
		return err
	}

	today := a.journal.Today()
	if err := a.journal.SetDayRating(ctx, a.owner(), today, rating); err != nil {
		return err
	}

	saved, _ := a.journal.DayRating(ctx, a.owner(), today)
	fmt.Printf("Rating saved: %d/10 for %s\n", saved, today)
	return nil
}

// Statistics prints the activity summary for the current owner.
func (a *App) Statistics(ctx context.Context) error {
	stats := a.journal.Stats(ctx, a.owner())

	fmt.Printf("Total entries:  %d\n", stats.TotalEntries)
	fmt.Printf("Current streak: %d day(s)\n", stats.CurrentStreak)
	if stats.RatedDays > 0 {
		fmt.Printf("Average mood:   %.1f/10 (last 30 days, %d rated)\n", stats.AverageRating, stats.RatedDays)
	} else {
		fmt.Println("Average mood:   no ratings in the last 30 days")
	}
	if current := a.session.Current(); current != nil && !current.CreatedAt.IsZero() {
		fmt.Printf("Member since:   %s\n", current.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
