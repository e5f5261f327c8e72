package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/auth"
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/export"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

type handlers struct {
	Deps
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PharmacyName string    `json:"pharmacyName"`
	Rep          string    `json:"representativeName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newUserView(u store.User) userView {
	return userView{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PharmacyName: u.PharmacyName,
		Rep:          u.RepresentativeName,
		CreatedAt:    u.CreatedAt,
	}
}

type moduleView struct {
	ID        content.Module `json:"id"`
	Name      string         `json:"name"`
	Available bool           `json:"available"`
	Completed bool           `json:"completed"`
}

type progressView struct {
	Points              int          `json:"points"`
	Level               int          `json:"level"`
	LevelName           string       `json:"levelName"`
	NextThreshold       int          `json:"nextThreshold,omitempty"`
	Badges              []string     `json:"badges"`
	CompletedActivities []string     `json:"completedActivities"`
	Modules             []moduleView `json:"modules"`
	CertificateEligible bool         `json:"certificateEligible"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "biofit-expert", "version": h.Version})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, account.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.logError(r.Context(), "login failed", err, "")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	admin := h.Accounts.IsAdmin(u)
	token, exp, err := h.Tokens.Issue(u.ID, u.Email, admin)
	if err != nil {
		h.logError(r.Context(), "issue token", err, u.ID)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"expiresAt": exp,
		"admin":     admin,
		"user":      newUserView(*u),
	})
}

func (h *handlers) myProgress(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	p, err := h.Progress.Load(r.Context(), claims.UserID)
	if progress.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "no progress record")
		return
	}
	if err != nil {
		h.logError(r.Context(), "load progress", err, claims.UserID)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	pack := h.Progress.Pack()
	done := p.Completed()
	view := progressView{
		Points:              p.Points,
		Level:               p.Level,
		LevelName:           progress.LevelName(p.Level),
		Badges:              nonNil(p.Badges),
		CompletedActivities: nonNil(p.CompletedActivities),
		CertificateEligible: progress.CertificateEligible(p, pack.Thresholds),
	}
	if next, ok := progress.NextThreshold(p.Points, pack.Thresholds); ok {
		view.NextThreshold = next
	}
	for _, m := range content.AllModules() {
		view.Modules = append(view.Modules, moduleView{
			ID:        m,
			Name:      m.DisplayName(),
			Available: progress.IsAvailable(m, done),
			Completed: done.Has(progress.CompleteMarker(m)),
		})
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		h.logError(r.Context(), "list users", err, "")
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	type row struct {
		userView
		Points              int      `json:"points"`
		Level               int      `json:"level"`
		Badges              []string `json:"badges"`
		CompletedActivities int      `json:"completedActivities"`
	}
	out := make([]row, 0, len(users))
	for _, u := range users {
		out = append(out, row{
			userView:            newUserView(u.User),
			Points:              u.Points,
			Level:               u.Level,
			Badges:              nonNil(u.Badges),
			CompletedActivities: u.CompletedActivities,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":           len(users),
		"registeredToday": export.RegisteredOn(users, h.Now()),
		"users":           out,
	})
}

func (h *handlers) exportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		h.logError(r.Context(), "list users for export", err, "")
		writeError(w, http.StatusInternalServerError, "failed to export users")
		return
	}
	var buf bytes.Buffer
	if err := export.WriteUsers(&buf, users); err != nil {
		h.logError(r.Context(), "render users export", err, "")
		writeError(w, http.StatusInternalServerError, "failed to export users")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.UsersFileName(h.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		h.logError(r.Context(), "list users for stats", err, "")
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	modules, err := h.Store.EventRepo().SessionStatsByModule(r.Context())
	if err != nil {
		h.logError(r.Context(), "session stats", err, "")
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	pack := h.Progress.Pack()
	levels := map[string]int{}
	certified := 0
	for _, u := range users {
		levels[progress.LevelName(u.Level)]++
		if u.Points >= pack.Thresholds.Maestro {
			certified++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalUsers":      len(users),
		"registeredToday": export.RegisteredOn(users, h.Now()),
		"levels":          levels,
		"maestro":         certified,
		"modules":         modules,
	})
}

// logError logs through the request-scoped logger set by requestLogger.
func (h *handlers) logError(ctx context.Context, message string, err error, userID string) {
	attrs := []any{slog.Any("error", err)}
	if userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	logging.FromContext(ctx).Error(message, attrs...)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
