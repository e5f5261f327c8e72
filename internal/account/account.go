// Package account registers trainees and signs them in.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/santgross/BIOFIT-EXPERT/internal/auth"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Users is the subset of the store the account service needs.
type Users interface {
	CreateUser(ctx context.Context, u *store.User) error
	UserByEmail(ctx context.Context, email string) (*store.User, error)
}

// RegisterInput is the registration form.
type RegisterInput struct {
	FirstName          string `validate:"required,max=80"`
	LastName           string `validate:"required,max=80"`
	Email              string `validate:"required,email,max=254"`
	Phone              string `validate:"required,min=7,max=20"`
	PharmacyName       string `validate:"required,max=120"`
	RepresentativeName string `validate:"omitempty,max=120"`
	Password           string `validate:"required,min=6,max=72"`
	PrivacyAccepted    bool   `validate:"required"`
}

// ValidationError lists the form fields that failed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// Service registers and authenticates users.
type Service struct {
	users      Users
	adminEmail string
	validate   *validator.Validate
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates an account service. adminEmail identifies the
// administrator account.
func NewService(users Users, adminEmail string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:      users,
		adminEmail: NormalizeEmail(adminEmail),
		validate:   validator.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates in, stores the new user with a zeroed progress record
// and returns it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*store.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.PharmacyName = strings.TrimSpace(in.PharmacyName)
	in.RepresentativeName = strings.TrimSpace(in.RepresentativeName)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, &ValidationError{Fields: fields}
		}
		return nil, fmt.Errorf("validate registration: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	u := &store.User{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		PharmacyName:       in.PharmacyName,
		RepresentativeName: in.RepresentativeName,
		PasswordHash:       hash,
		PrivacyAcceptedAt:  now,
		CreatedAt:          now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login returns the user whose email and password match.
func (s *Service) Login(ctx context.Context, email, password string) (*store.User, error) {
	u, err := s.users.UserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		s.logger.Warn("login rejected", "user_id", u.ID)
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IsAdmin reports whether u is the administrator.
func (s *Service) IsAdmin(u *store.User) bool {
	return u != nil && s.adminEmail != "" && NormalizeEmail(u.Email) == s.adminEmail
}

// FindByEmail looks a user up by address.
func (s *Service) FindByEmail(ctx context.Context, email string) (*store.User, error) {
	return s.users.UserByEmail(ctx, NormalizeEmail(email))
}
