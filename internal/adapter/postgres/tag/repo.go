// Package tag implements the Tag repository and the story_tags association
// using PostgreSQL.
package tag

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

const returning = "RETURNING id, name, color, created_at"

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name, Color: r.Color, CreatedAt: r.CreatedAt}
}

// storyTagRow is a tag joined with the story it is attached to.
type storyTagRow struct {
	StoryID   uuid.UUID `db:"story_id"`
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *Repo) get(ctx context.Context, q squirrel.Sqlizer, key any) (*domain.Tag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", key)
	}
	t := out.toDomain()
	return &t, nil
}

// List returns every tag ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	sql, args, err := postgres.Builder().
		Select("id", "name", "color", "created_at").
		From("tags").
		OrderBy("lower(name) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "tag", "list")
	}

	out := make([]domain.Tag, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a tag by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	return r.get(ctx, postgres.Builder().
		Select("id", "name", "color", "created_at").
		From("tags").
		Where(squirrel.Eq{"id": id}), id)
}

// GetByNameCI returns the tag whose name matches name case-insensitively.
func (r *Repo) GetByNameCI(ctx context.Context, name string) (*domain.Tag, error) {
	return r.get(ctx, postgres.Builder().
		Select("id", "name", "color", "created_at").
		From("tags").
		Where("lower(name) = lower(?)", name), name)
}

// Create inserts a tag. A case-insensitive name clash maps to
// domain.ErrAlreadyExists through the unique index on lower(name).
func (r *Repo) Create(ctx context.Context, name, color string) (*domain.Tag, error) {
	return r.get(ctx, postgres.Builder().
		Insert("tags").
		Columns("name", "color").
		Values(name, color).
		Suffix(returning), name)
}

// Update renames and recolors a tag.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, color string) (*domain.Tag, error) {
	return r.get(ctx, postgres.Builder().
		Update("tags").
		Set("name", name).
		Set("color", color).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning), id)
}

// Delete removes a tag. Story associations cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete("tags").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build tag delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByStoryIDs loads the tags of every story in storyIDs with a single
// query. Stories without tags are absent from the map.
func (r *Repo) GetByStoryIDs(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	out := make(map[uuid.UUID][]domain.Tag, len(storyIDs))
	if len(storyIDs) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select("st.story_id", "t.id", "t.name", "t.color", "t.created_at").
		From("story_tags st").
		Join("tags t ON t.id = st.tag_id").
		Where("st.story_id = ANY(?)", storyIDs).
		OrderBy("lower(t.name) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story tags query: %w", err)
	}

	var rows []storyTagRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "story_tags", "batch")
	}
	for _, rw := range rows {
		out[rw.StoryID] = append(out[rw.StoryID], domain.Tag{
			ID:        rw.ID,
			Name:      rw.Name,
			Color:     rw.Color,
			CreatedAt: rw.CreatedAt,
		})
	}
	return out, nil
}

// ReplaceForStory makes tagIDs the exact tag set of storyID. Call inside a
// transaction. Unknown tag ids map to domain.ErrNotFound.
func (r *Repo) ReplaceForStory(ctx context.Context, storyID uuid.UUID, tagIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Delete("story_tags").Where(squirrel.Eq{"story_id": storyID}).ToSql()
	if err != nil {
		return fmt.Errorf("build story tags delete: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "story_tags", storyID)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("story_tags").Columns("story_id", "tag_id")
	seen := make(map[uuid.UUID]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ins = ins.Values(storyID, id)
	}

	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build story tags insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "story_tags", storyID)
	}
	return nil
}
