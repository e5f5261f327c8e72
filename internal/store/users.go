package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var userColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "pharmacy_name",
	"representative_name", "password_hash", "privacy_accepted_at", "created_at",
}

// CreateUser inserts u together with a zeroed progress record. An empty ID
// is filled with a new UUID and a zero CreatedAt with the current time.
// A reused email fails with ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query, args := builder().Insert(usersTableName).
		Columns(userColumns...).
		Values(u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.PharmacyName,
			u.RepresentativeName, u.PasswordHash, u.PrivacyAcceptedAt.UTC(), u.CreatedAt.UTC()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", u.Email, ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}

	query, args = builder().Insert(progressTableName).
		Columns("user_id", "points", "level", "badges", "completed_activities", "updated_at").
		Values(u.ID, 0, 1, "[]", "[]", u.CreatedAt.UTC()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create progress: %w", err)
	}

	return tx.Commit()
}

// UserByEmail returns the user registered with email, or ErrNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	return s.userWhere(ctx, entsql.EQ("email", email))
}

// UserByID returns the user with id, or ErrNotFound.
func (s *Store) UserByID(ctx context.Context, id string) (*User, error) {
	return s.userWhere(ctx, entsql.EQ("id", id))
}

func (s *Store) userWhere(ctx context.Context, p *entsql.Predicate) (*User, error) {
	query, args := builder().Select(userColumns...).
		From(builder().Table(usersTableName)).
		Where(p).
		Limit(1).
		Query()

	var u User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PharmacyName,
		&u.RepresentativeName, &u.PasswordHash, &u.PrivacyAcceptedAt, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every user with their progress, newest registration
// first.
func (s *Store) ListUsers(ctx context.Context) ([]UserSummary, error) {
	u := builder().Table(usersTableName)
	p := builder().Table(progressTableName).As("p")

	cols := make([]string, 0, len(userColumns)+4)
	for _, c := range userColumns {
		cols = append(cols, u.C(c))
	}
	cols = append(cols, p.C("points"), p.C("level"), p.C("badges"), p.C("completed_activities"))

	query, args := builder().Select(cols...).
		From(u).
		LeftJoin(p).On(u.C("id"), p.C("user_id")).
		OrderBy(entsql.Desc(u.C("created_at"))).
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []UserSummary
	for rows.Next() {
		var (
			sum              UserSummary
			points, level    sql.NullInt64
			badges, complete []byte
		)
		err := rows.Scan(
			&sum.ID, &sum.FirstName, &sum.LastName, &sum.Email, &sum.Phone, &sum.PharmacyName,
			&sum.RepresentativeName, &sum.PasswordHash, &sum.PrivacyAcceptedAt, &sum.CreatedAt,
			&points, &level, &badges, &complete,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		sum.Points = int(points.Int64)
		sum.Level = max(int(level.Int64), 1)
		if sum.Badges, err = decodeIDs(badges); err != nil {
			return nil, err
		}
		ids, err := decodeIDs(complete)
		if err != nil {
			return nil, err
		}
		sum.CompletedActivities = len(ids)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func decodeIDs(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode id list: %w", err)
	}
	return ids, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode id list: %w", err)
	}
	return string(b), nil
}
