package journal

import (
	"context"

	"moodmate/internal/models"
)

const ratingWindowDays = 30

// Stats computes the owner's activity summary.
//
// The streak counts consecutive calendar days ending today that have at
// least one entry, stopping at the first gap (and at the one-year horizon).
// The rating average covers the trailing 30 days; days without a rating
// contribute to neither numerator nor denominator.
func (s *Service) Stats(ctx context.Context, owner string) models.Stats {
	byDay := s.load(ctx, owner)

	var stats models.Stats
	for _, entries := range byDay {
		stats.TotalEntries += len(entries)
	}

	today := s.now()
	for i := 0; i < streakHorizonDays; i++ {
		day := today.AddDate(0, 0, -i).Format(DayLayout)
		if len(byDay[day]) == 0 {
			break
		}
		stats.CurrentStreak++
	}

	var sum int
	for i := 0; i < ratingWindowDays; i++ {
		day := today.AddDate(0, 0, -i).Format(DayLayout)
		if rating, ok := s.DayRating(ctx, owner, day); ok {
			sum += rating
			stats.RatedDays++
		}
	}
	if stats.RatedDays > 0 {
		stats.AverageRating = float64(sum) / float64(stats.RatedDays)
	}

	return stats
}
