package cli

import (
	"context"
	"errors"
	"fmt"

	"moodmate/internal/analysis"
)

// Analyze sends the owner's whole journal to the analysis service and
// prints the result. Failures are reported and the user simply re-runs the
// command; there is no automatic retry.
func (a *App) Analyze(ctx context.Context) error {
	entries := a.journal.AllEntries(ctx, a.owner())

	fmt.Println("Analyzing your journal...")
	result, err := a.analyzer.Analyze(ctx, entries)
	if err != nil {
		if errors.Is(err, analysis.ErrNoEntries) {
			fmt.Println("No entries to analyze yet — write something first")
			return err
		}
		fmt.Println("Analysis failed, try again later")
		return err
	}

	fmt.Printf("\nMood: %s\n", result.Mood)
	if len(result.Emotions) > 0 {
		fmt.Println("Emotions:")
		for _, emotion := range result.Emotions {
			fmt.Printf("  - %s\n", emotion)
		}
	}
	fmt.Printf("\n%s\n", result.Summary)
	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range result.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
	return nil
}
