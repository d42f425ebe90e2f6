// Package cli implements the interactive MoodMate client: a small REPL
// over the session manager, the journal store, and the analysis adapter.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"moodmate/internal/analysis"
	"moodmate/internal/config"
	"moodmate/internal/journal"
	"moodmate/internal/models"
	"moodmate/internal/session"
	"moodmate/internal/storage"
	"moodmate/internal/users"
)

// Analyzer is the journal-analysis dependency of the CLI. The concrete
// implementation is the HTTP adapter; tests substitute a stub.
type Analyzer interface {
	Analyze(ctx context.Context, entries []models.JournalEntry) (*models.Analysis, error)
}

type App struct {
	config   *config.Config
	session  *session.Manager
	journal  *journal.Service
	analyzer Analyzer
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	store := storage.NewDiskStore(cfg.DataDir)
	directory := users.NewDirectory(store)

	sess := session.NewManager(store, directory)
	sess.Restore(context.Background())

	return &App{
		config:   cfg,
		session:  sess,
		journal:  journal.NewService(store),
		analyzer: analysis.NewClient(cfg.AnalyzeEndpointAddr),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// owner returns the namespace journal data is stored under: the logged-in
// account's id, or the guest sentinel.
func (a *App) owner() string {
	if current := a.session.Current(); current != nil {
		return current.ID
	}
	return journal.GuestOwner
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	if current := a.session.Current(); current != nil {
		return current.Email
	}
	return journal.GuestOwner
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to MoodMate (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
