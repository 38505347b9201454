// Package story implements the Story repository using PostgreSQL. Listings
// join the author profile and the vertical in one query; tags are loaded
// separately in one batched query by the tag repository.
package story

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

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new story repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Content      string     `db:"content"`
	AuthorID     uuid.UUID  `db:"author_id"`
	VerticalID   *uuid.UUID `db:"vertical_id"`
	Geolocation  *string    `db:"geolocation"`
	DiagramURL   *string    `db:"diagram_url"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	AuthorName   *string    `db:"author_name"`
	AuthorEmail  *string    `db:"author_email"`
	VerticalName *string    `db:"vertical_name"`
}

func (r row) toDomain() domain.Story {
	s := domain.Story{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		VerticalID: r.VerticalID,
		Region:     r.Geolocation,
		DiagramURL: r.DiagramURL,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		Author:     domain.StoryAuthor{ID: r.AuthorID},
		Tags:       []domain.Tag{},
	}
	if r.AuthorName != nil {
		s.Author.DisplayName = *r.AuthorName
	}
	if r.AuthorEmail != nil {
		s.Author.Email = *r.AuthorEmail
	}
	if r.VerticalID != nil && r.VerticalName != nil {
		s.Vertical = &domain.Vertical{ID: *r.VerticalID, Name: *r.VerticalName}
	}
	return s
}

func joined() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"s.id", "s.title", "s.content", "s.author_id", "s.vertical_id",
			"s.geolocation", "s.diagram_url", "s.created_at", "s.updated_at",
			"p.display_name AS author_name", "p.email AS author_email",
			"v.name AS vertical_name",
		).
		From("stories s").
		LeftJoin("profiles p ON p.id = s.author_id").
		LeftJoin("business_verticals v ON v.id = s.vertical_id")
}

// List returns stories newest first with author and vertical resolved.
// A non-nil authorID restricts the result to that author. Tags are empty.
func (r *Repo) List(ctx context.Context, authorID *uuid.UUID) ([]domain.Story, error) {
	q := joined().OrderBy("s.created_at DESC", "s.id ASC")
	if authorID != nil {
		q = q.Where(squirrel.Eq{"s.author_id": *authorID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "story", "list")
	}

	out := make([]domain.Story, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a story with author and vertical resolved. Tags are empty.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	sql, args, err := joined().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "story", id)
	}
	s := out.toDomain()
	return &s, nil
}

// Create inserts a story and returns its id. An unknown vertical maps to
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, s *domain.Story) (uuid.UUID, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert("stories").
		Columns("id", "title", "content", "author_id", "vertical_id", "geolocation", "diagram_url").
		Values(s.ID, s.Title, s.Content, s.AuthorID, s.VerticalID, s.Region, s.DiagramURL).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build story insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return uuid.Nil, postgres.MapError(err, "story", s.ID)
	}
	return s.ID, nil
}

// Update writes title, content, vertical and region. The diagram reference
// is written only when s.DiagramURL is non-nil.
func (r *Repo) Update(ctx context.Context, s *domain.Story) error {
	q := postgres.Builder().
		Update("stories").
		Set("title", s.Title).
		Set("content", s.Content).
		Set("vertical_id", s.VerticalID).
		Set("geolocation", s.Region).
		Set("updated_at", squirrel.Expr("now()"))
	if s.DiagramURL != nil {
		q = q.Set("diagram_url", *s.DiagramURL)
	}

	return r.exec(ctx, q.Where(squirrel.Eq{"id": s.ID}), s.ID)
}

// UpdateDiagram stores a diagram reference on the story.
func (r *Repo) UpdateDiagram(ctx context.Context, id uuid.UUID, ref string) error {
	return r.exec(ctx, postgres.Builder().
		Update("stories").
		Set("diagram_url", ref).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}), id)
}

// Delete hard-deletes a story. Tag associations cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, postgres.Builder().Delete("stories").Where(squirrel.Eq{"id": id}), id)
}

func (r *Repo) exec(ctx context.Context, q squirrel.Sqlizer, id uuid.UUID) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build story statement: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "story", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of stories, optionally restricted to one author.
func (r *Repo) Count(ctx context.Context, authorID *uuid.UUID) (int, error) {
	q := postgres.Builder().Select("count(*)").From("stories")
	if authorID != nil {
		q = q.Where(squirrel.Eq{"author_id": *authorID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build story count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "story", "count")
	}
	return n, nil
}

// Regions returns the distinct non-empty regions in use, sorted.
func (r *Repo) Regions(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder().
		Select("DISTINCT geolocation").
		From("stories").
		Where("geolocation IS NOT NULL AND geolocation <> ''").
		OrderBy("geolocation ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build regions query: %w", err)
	}

	var regions []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &regions, sql, args...); err != nil {
		return nil, postgres.MapError(err, "story", "regions")
	}
	if regions == nil {
		regions = []string{}
	}
	return regions, nil
}
