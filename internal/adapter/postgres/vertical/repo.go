// Package vertical implements the business vertical repository using PostgreSQL.
package vertical

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

const returning = "RETURNING id, name, description, created_at, updated_at, 0 AS story_count"

// Repo provides vertical persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vertical repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	StoryCount  int       `db:"story_count"`
}

func (r row) toDomain() domain.Vertical {
	return domain.Vertical{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		StoryCount:  r.StoryCount,
	}
}

func selectWithCount() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("v.id", "v.name", "v.description", "v.created_at", "v.updated_at",
			"(SELECT count(*) FROM stories s WHERE s.vertical_id = v.id) AS story_count").
		From("business_verticals v")
}

func (r *Repo) get(ctx context.Context, q squirrel.Sqlizer, key any) (*domain.Vertical, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vertical query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vertical", key)
	}
	v := out.toDomain()
	return &v, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.Sqlizer) ([]domain.Vertical, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vertical query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vertical", "list")
	}

	out := make([]domain.Vertical, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// List returns every vertical ordered by name, with its story count.
func (r *Repo) List(ctx context.Context) ([]domain.Vertical, error) {
	return r.list(ctx, selectWithCount().OrderBy("lower(v.name) ASC"))
}

// ListInUse returns the verticals referenced by at least one story.
func (r *Repo) ListInUse(ctx context.Context) ([]domain.Vertical, error) {
	return r.list(ctx, selectWithCount().
		Where("EXISTS (SELECT 1 FROM stories s WHERE s.vertical_id = v.id)").
		OrderBy("lower(v.name) ASC"))
}

// GetByID returns a vertical with its story count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vertical, error) {
	return r.get(ctx, selectWithCount().Where(squirrel.Eq{"v.id": id}), id)
}

// Create inserts a vertical. Duplicate names (case-insensitive) map to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string, description *string) (*domain.Vertical, error) {
	return r.get(ctx, postgres.Builder().
		Insert("business_verticals").
		Columns("name", "description").
		Values(name, description).
		Suffix(returning), name)
}

// Update renames a vertical. Stories reference the row, so the new name is
// visible on every story immediately.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Vertical, error) {
	sql, args, err := postgres.Builder().
		Update("business_verticals").
		Set("name", name).
		Set("description", description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vertical update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "vertical", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("vertical %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a vertical. Stories keep existing with vertical_id = NULL.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete("business_verticals").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build vertical delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "vertical", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vertical %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
