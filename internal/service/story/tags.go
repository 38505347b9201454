package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

var errTagExists = domain.NewAlreadyExists("tag already exists")

// ListTags returns all tags ordered by name.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("story.ListTags: %w", err)
	}
	return tags, nil
}

// ListVerticals returns all business verticals with their story counts.
func (s *Service) ListVerticals(ctx context.Context) ([]domain.Vertical, error) {
	verticals, err := s.verticals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("story.ListVerticals: %w", err)
	}
	return verticals, nil
}

// CreateTag creates an ad-hoc tag with a random palette color for a
// signed-in caller. A case-insensitive name match returns ErrAlreadyExists.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = domain.CleanName(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Case-insensitive duplicate check
	existing, err := s.tags.GetByNameCI(ctx, input.Name)
	switch {
	case err == nil && existing != nil:
		return nil, errTagExists
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("story.CreateTag lookup: %w", err)
	}

	// Step 2: Insert; losing a concurrent race hits the unique index
	tag, err := s.tags.Create(ctx, input.Name, s.pickColor())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errTagExists
		}
		return nil, fmt.Errorf("story.CreateTag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created", slog.String("tag_id", tag.ID.String()), slog.String("name", tag.Name), slog.String("user_id", userID.String()))
	return tag, nil
}
