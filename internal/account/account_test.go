package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, "sgross@pharmabrand.com.ec", logging.Discard()), st
}

func validInput() RegisterInput {
	return RegisterInput{
		FirstName:       "Ana",
		LastName:        "Pérez",
		Email:           "  Ana.Perez@Farmacia.EC ",
		Phone:           "0991234567",
		PharmacyName:    "Farmacia Central",
		Password:        "biofit25",
		PrivacyAccepted: true,
	}
}

func TestRegisterCreatesUserAndProgress(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ana.perez@farmacia.ec", u.Email)
	assert.NotEqual(t, "biofit25", u.PasswordHash)
	assert.False(t, u.PrivacyAcceptedAt.IsZero())

	p, err := st.ProgressRepo().GetProgress(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Points)
	assert.Equal(t, 1, p.Level)
	assert.Empty(t, p.Badges)
	assert.Empty(t, p.CompletedActivities)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	again := validInput()
	again.Email = "ANA.PEREZ@farmacia.ec"
	_, err = svc.Register(ctx, again)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService(t)
	tests := map[string]struct {
		mutate func(*RegisterInput)
		field  string
	}{
		"missing first name": {func(in *RegisterInput) { in.FirstName = "  " }, "FirstName"},
		"bad email":          {func(in *RegisterInput) { in.Email = "ana-at-farmacia" }, "Email"},
		"short password":     {func(in *RegisterInput) { in.Password = "abc" }, "Password"},
		"no consent":         {func(in *RegisterInput) { in.PrivacyAccepted = false }, "PrivacyAccepted"},
		"missing pharmacy":   {func(in *RegisterInput) { in.PharmacyName = "" }, "PharmacyName"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	u, err := svc.Login(ctx, "ANA.PEREZ@farmacia.ec", "biofit25")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", u.FullName())
	assert.False(t, svc.IsAdmin(u))

	_, err = svc.Login(ctx, "ana.perez@farmacia.ec", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nadie@farmacia.ec", "biofit25")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIsAdmin(t *testing.T) {
	svc, _ := newService(t)
	assert.True(t, svc.IsAdmin(&store.User{Email: "SGross@PharmaBrand.com.ec"}))
	assert.False(t, svc.IsAdmin(nil))
}
