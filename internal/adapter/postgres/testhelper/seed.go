package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a users row and its active profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:          uuid.New(),
		Email:       "tester-" + suffix + "@example.com",
		DisplayName: "Tester " + suffix,
		Status:      domain.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		p.ID, p.Email, "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv", now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (id, email, display_name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		p.ID, p.Email, p.DisplayName, string(p.Status), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return p
}

// SeedAdmin creates a user and grants the admin role through create_admin_user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()

	p := SeedUser(t, pool)
	if _, err := pool.Exec(context.Background(), `SELECT create_admin_user($1, NULL)`, p.ID); err != nil {
		t.Fatalf("testhelper: SeedAdmin grant: %v", err)
	}
	return p
}

// SeedTag creates a tag with a unique name and the default color.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()

	tag := domain.Tag{ID: uuid.New(), Name: "tag-" + uniqueSuffix(), Color: "#3b82f6"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (id, name, color) VALUES ($1, $2, $3) RETURNING created_at`,
		tag.ID, tag.Name, tag.Color,
	).Scan(&tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedVertical creates a business vertical with a unique name.
func SeedVertical(t *testing.T, pool *pgxpool.Pool) domain.Vertical {
	t.Helper()

	v := domain.Vertical{ID: uuid.New(), Name: "Vertical " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO business_verticals (id, name) VALUES ($1, $2) RETURNING created_at, updated_at`,
		v.ID, v.Name,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedVertical: %v", err)
	}
	return v
}

// SeedStory creates a story for author, optionally in a vertical, linked to tags.
func SeedStory(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, verticalID *uuid.UUID, tags ...domain.Tag) domain.Story {
	t.Helper()
	ctx := context.Background()

	s := domain.Story{
		ID:         uuid.New(),
		Title:      "Story " + uniqueSuffix(),
		Content:    "We walked in through the loading dock.",
		AuthorID:   authorID,
		VerticalID: verticalID,
		Tags:       tags,
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO stories (id, title, content, author_id, vertical_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`,
		s.ID, s.Title, s.Content, s.AuthorID, s.VerticalID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStory: %v", err)
	}

	for _, tag := range tags {
		if _, err := pool.Exec(ctx,
			`INSERT INTO story_tags (story_id, tag_id) VALUES ($1, $2)`, s.ID, tag.ID,
		); err != nil {
			t.Fatalf("testhelper: SeedStory tag: %v", err)
		}
	}
	return s
}
