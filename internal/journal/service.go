// Package journal stores diary entries and day ratings, partitioned by the
// owning account. Entries live in one day-keyed record per owner; ratings
// live in one record per (owner, day). Anonymous use is bucketed under the
// guest owner so it can never touch a real account's data.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"moodmate/internal/models"
	"moodmate/internal/storage"
)

// GuestOwner is the namespace for unauthenticated activity. It is shared by
// every anonymous session on the same device; that leak is a known
// limitation of the storage scheme.
const GuestOwner = "guest"

// DayLayout is the calendar-day key format used to bucket entries and
// ratings.
const DayLayout = "2006-01-02"

const streakHorizonDays = 365

// ErrEmptyEntry is returned by AddEntry for empty or whitespace-only text;
// nothing is stored.
var ErrEmptyEntry = errors.New("entry text is empty")

type Service struct {
	store storage.Store
	now   func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func journalKey(owner string) string {
	return "moodmate_journal_" + owner
}

func ratingKey(owner, day string) string {
	return fmt.Sprintf("mood_%s_%s", owner, day)
}

// Today returns the current day key.
func (s *Service) Today() string {
	return s.now().Format(DayLayout)
}

// load reads an owner's full journal as a day-key → entries map. Missing or
// undecodable data yields an empty journal.
func (s *Service) load(ctx context.Context, owner string) map[string][]models.JournalEntry {
	raw, ok := s.store.Get(ctx, journalKey(owner))
	if !ok {
		return map[string][]models.JournalEntry{}
	}
	var byDay map[string][]models.JournalEntry
	if err := json.Unmarshal([]byte(raw), &byDay); err != nil || byDay == nil {
		return map[string][]models.JournalEntry{}
	}
	return byDay
}

func (s *Service) save(ctx context.Context, owner string, byDay map[string][]models.JournalEntry) error {
	data, err := json.Marshal(byDay)
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	return s.store.Set(ctx, journalKey(owner), string(data))
}

// AddEntry appends a new entry to the owner's journal. The day key is
// derived from the entry's own creation time, so entries cannot be
// backdated. Whitespace-only text is rejected without touching the store.
func (s *Service) AddEntry(ctx context.Context, owner, text string) (*models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyEntry
	}

	createdAt := s.now()
	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: createdAt,
		DayKey:    createdAt.Format(DayLayout),
	}

	byDay := s.load(ctx, owner)
	byDay[entry.DayKey] = append(byDay[entry.DayKey], entry)
	if err := s.save(ctx, owner, byDay); err != nil {
		return nil, err
	}
	return &entry, nil
}

// EntriesForDay returns the owner's entries for one day in insertion order.
func (s *Service) EntriesForDay(ctx context.Context, owner, day string) []models.JournalEntry {
	return s.load(ctx, owner)[day]
}

// AllEntries returns every entry the owner has written, oldest day first
// and in insertion order within a day.
func (s *Service) AllEntries(ctx context.Context, owner string) []models.JournalEntry {
	byDay := s.load(ctx, owner)
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var all []models.JournalEntry
	for _, day := range days {
		all = append(all, byDay[day]...)
	}
	return all
}

// DaysWithEntries returns the day keys that have at least one entry, most
// recent first.
func (s *Service) DaysWithEntries(ctx context.Context, owner string) []string {
	byDay := s.load(ctx, owner)
	days := make([]string, 0, len(byDay))
	for day, entries := range byDay {
		if len(entries) > 0 {
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// SetDayRating stores the 1–10 rating for (owner, day), clamping
// out-of-range values and overwriting any previous rating for that day.
func (s *Service) SetDayRating(ctx context.Context, owner, day string, value int) error {
	if value < 1 {
		value = 1
	}
	if value > 10 {
		value = 10
	}
	return s.store.Set(ctx, ratingKey(owner, day), strconv.Itoa(value))
}

// DayRating returns the rating recorded for (owner, day), if any.
func (s *Service) DayRating(ctx context.Context, owner, day string) (int, bool) {
	raw, ok := s.store.Get(ctx, ratingKey(owner, day))
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
