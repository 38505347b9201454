// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/adapter/postgres"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

const returning = "RETURNING id, email, display_name, department, business_vertical, status, created_at, updated_at"

var columns = []string{
	"id", "email", "display_name", "department", "business_vertical",
	"status", "created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	DisplayName      string    `db:"display_name"`
	Department       *string   `db:"department"`
	BusinessVertical *string   `db:"business_vertical"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Profile {
	return domain.Profile{
		ID:               r.ID,
		Email:            r.Email,
		DisplayName:      r.DisplayName,
		Department:       r.Department,
		BusinessVertical: r.BusinessVertical,
		Status:           domain.UserStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *Repo) get(ctx context.Context, q squirrel.Sqlizer, key any) (*domain.Profile, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", key)
	}
	p := out.toDomain()
	return &p, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.Sqlizer) ([]domain.Profile, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", "list")
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts the profile row of a new identity.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	status := p.Status
	if status == "" {
		status = domain.UserStatusActive
	}

	return r.get(ctx, postgres.Builder().
		Insert("profiles").
		Columns("id", "email", "display_name", "department", "business_vertical", "status").
		Values(p.ID, p.Email, p.DisplayName, p.Department, p.BusinessVertical, string(status)).
		Suffix(returning), p.ID)
}

// GetByID returns a profile by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.get(ctx, postgres.Builder().Select(columns...).From("profiles").Where(squirrel.Eq{"id": id}), id)
}

// GetByEmail returns a profile by case-insensitive email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.get(ctx, postgres.Builder().
		Select(columns...).
		From("profiles").
		Where("lower(email) = lower(?)", email), email)
}

// GetByIDs returns the profiles for ids in no particular order. Unknown ids
// are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}
	return r.list(ctx, postgres.Builder().Select(columns...).From("profiles").Where("id = ANY(?)", ids))
}

// List returns every profile, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	return r.list(ctx, postgres.Builder().Select(columns...).From("profiles").OrderBy("created_at DESC"))
}

// Update applies the non-nil fields of patch and returns the fresh row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update("profiles").Set("updated_at", squirrel.Expr("now()"))
	if patch.DisplayName != nil {
		q = q.Set("display_name", *patch.DisplayName)
	}
	if patch.Department != nil {
		q = q.Set("department", *patch.Department)
	}
	if patch.BusinessVertical != nil {
		q = q.Set("business_vertical", *patch.BusinessVertical)
	}

	return r.get(ctx, q.Where(squirrel.Eq{"id": id}).Suffix(returning), id)
}

// SetStatus changes the lifecycle status and returns the fresh row.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.Profile, error) {
	return r.get(ctx, postgres.Builder().
		Update("profiles").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning), id)
}

// Count returns the number of profiles.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM profiles`).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "profile", "count")
	}
	return n, nil
}
