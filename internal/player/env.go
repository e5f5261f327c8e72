// Package player holds the state shared by the TUI screens: the signed-in
// trainee, their cached progress and the services a session reports to.
package player

import (
	"context"
	"log/slog"
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/coach"
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/game"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
	"github.com/santgross/BIOFIT-EXPERT/internal/ui/layout"
)

// SessionLog records finished sessions and reads them back.
type SessionLog interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	QuerySessionEvents(ctx context.Context, opts store.QueryOpts) ([]store.SessionEventRecord, error)
}

// Env is shared by pointer between screens.
type Env struct {
	Pack     *content.Pack
	Progress *progress.Service
	// Accounts is nil when the program runs without a database.
	Accounts *account.Service
	Sessions SessionLog
	Coach    *coach.Coach
	Logger   *slog.Logger

	TriviaBudget time.Duration
	// CertificateDir is where certificate PDFs are written.
	CertificateDir string
	Now            func() time.Time

	user    *store.User
	current *progress.UserProgress
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Log returns the configured logger or slog.Default().
func (e *Env) Log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// SignIn makes u the active trainee and loads their progress.
func (e *Env) SignIn(ctx context.Context, u *store.User) error {
	p, err := e.Progress.Load(ctx, u.ID)
	if err != nil {
		return err
	}
	e.user = u
	e.current = p
	e.Log().Info("trainee signed in", "user_id", u.ID)
	return nil
}

// PlayAsGuest clears the active trainee. Guest sessions are scored but
// never persisted.
func (e *Env) PlayAsGuest() {
	e.user = nil
	e.current = nil
}

// SignOut forgets the active trainee and their cached progress.
func (e *Env) SignOut() {
	if e.user != nil {
		e.Log().Info("trainee signed out", "user_id", e.user.ID)
	}
	e.user = nil
	e.current = nil
}

// User returns the signed-in trainee, or nil for a guest.
func (e *Env) User() *store.User { return e.user }

// IsGuest reports whether nobody is signed in.
func (e *Env) IsGuest() bool { return e.user == nil }

// UserID returns the active trainee id, empty for a guest.
func (e *Env) UserID() string {
	if e.user == nil {
		return ""
	}
	return e.user.ID
}

// Current returns the cached progress. Guests get a fresh level-1 record.
func (e *Env) Current() *progress.UserProgress {
	if e.current == nil {
		return &progress.UserProgress{Level: progress.MinLevel}
	}
	return e.current
}

// Refresh reloads the trainee's progress from the store.
func (e *Env) Refresh(ctx context.Context) error {
	if e.user == nil {
		return nil
	}
	p, err := e.Progress.Load(ctx, e.user.ID)
	if err != nil {
		return err
	}
	e.current = p
	return nil
}

// Available reports whether module m can be played. Guests may practice
// every module.
func (e *Env) Available(m content.Module) bool {
	if e.IsGuest() {
		return true
	}
	return progress.IsAvailable(m, e.Current().Completed())
}

// Status is the header summary.
func (e *Env) Status() layout.Status {
	if e.user == nil {
		return layout.Status{}
	}
	p := e.Current()
	return layout.Status{
		Name:      e.user.FirstName,
		Points:    p.Points,
		LevelName: progress.LevelName(p.Level),
	}
}

// SessionOptions returns the options for a new session of the active
// trainee.
func (e *Env) SessionOptions() game.Options {
	p := e.Current()
	return game.Options{
		Level:     p.Level,
		Completed: p.Completed(),
		Now:       e.Now,
	}
}

// Complete merges a finished session and records it in the session log.
// The outcome always carries the session score, even on error.
func (e *Env) Complete(ctx context.Context, res progress.Result) (progress.Outcome, error) {
	out, err := e.Progress.Complete(ctx, e.UserID(), res)
	if out.Progress != nil {
		e.current = out.Progress
	}
	if e.user == nil || e.Sessions == nil {
		return out, err
	}
	logErr := e.Sessions.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   res.SessionID,
		UserID:      e.user.ID,
		Module:      string(res.Module),
		Level:       res.Level,
		Score:       res.Score,
		PointsAdded: out.PointsAdded,
		Correct:     res.Correct,
		Answered:    res.Answered,
		Total:       res.Total,
		TimedOut:    res.TimedOut,
		DurationMs:  res.Duration.Milliseconds(),
	})
	if logErr != nil {
		e.Log().Warn("record session event", "session_id", res.SessionID, "error", logErr)
	}
	return out, err
}

// RecentSessions returns the active trainee's latest sessions, newest
// first. Guests have no history.
func (e *Env) RecentSessions(ctx context.Context, limit int) ([]store.SessionEventRecord, error) {
	if e.user == nil || e.Sessions == nil {
		return nil, nil
	}
	return e.Sessions.QuerySessionEvents(ctx, store.QueryOpts{Limit: limit, UserID: e.user.ID})
}

// CertificateEligible reports whether the active trainee may download the
// certificate.
func (e *Env) CertificateEligible() bool {
	return e.user != nil && progress.CertificateEligible(e.current, e.Pack.Thresholds)
}

// Today returns the current time, used for certificate issue dates.
func (e *Env) Today() time.Time {
	return e.now()
}
