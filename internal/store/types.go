package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	UserID string    // session events only
}

// User is a registered trainee.
type User struct {
	ID                 string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	PharmacyName       string
	RepresentativeName string
	PasswordHash       string
	PrivacyAcceptedAt  time.Time
	CreatedAt          time.Time
}

// FullName returns "First Last".
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserSummary is a user joined with their progress, for admin listings.
type UserSummary struct {
	User
	Points              int
	Level               int
	Badges              []string
	CompletedActivities int
}

// SessionEventData captures one finished mini-game session.
type SessionEventData struct {
	SessionID   string
	UserID      string
	Module      string
	Level       int
	Score       int
	PointsAdded int
	Correct     int
	Answered    int
	Total       int
	TimedOut    bool
	DurationMs  int64
}

// SessionEventRecord is a persisted session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// ModuleStats aggregates session events for one module.
type ModuleStats struct {
	Module       string
	Sessions     int
	AvgScore     float64
	TimedOut     int
	TotalCorrect int
	TotalItems   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append access to LLM request events. The LLM
// logging decorator depends only on this.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
