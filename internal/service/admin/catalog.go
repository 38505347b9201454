package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// ListTags returns all tags ordered by name.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListTags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a tag. A missing color defaults to DefaultTagColor.
func (s *Service) CreateTag(ctx context.Context, input TagInput) (*domain.Tag, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.tags.Create(ctx, input.Name, input.color())
	if err != nil {
		return nil, fmt.Errorf("admin.CreateTag: %w", tagConflict(err))
	}

	s.log.InfoContext(ctx, "tag created", slog.String("tag_id", tag.ID.String()))
	return tag, nil
}

// UpdateTag renames and recolors a tag.
func (s *Service) UpdateTag(ctx context.Context, id uuid.UUID, input TagInput) (*domain.Tag, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.tags.Update(ctx, id, input.Name, input.color())
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateTag: %w", tagConflict(err))
	}
	return tag, nil
}

// DeleteTag removes a tag; story associations cascade.
func (s *Service) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("admin.DeleteTag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted", slog.String("tag_id", id.String()))
	return nil
}

func tagConflict(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewAlreadyExists("tag already exists")
	}
	return err
}

// ListVerticals returns all verticals with story counts.
func (s *Service) ListVerticals(ctx context.Context) ([]domain.Vertical, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	verticals, err := s.verticals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListVerticals: %w", err)
	}
	return verticals, nil
}

// CreateVertical creates a business vertical.
func (s *Service) CreateVertical(ctx context.Context, input VerticalInput) (*domain.Vertical, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.verticals.Create(ctx, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("admin.CreateVertical: %w", verticalConflict(err))
	}

	s.log.InfoContext(ctx, "vertical created", slog.String("vertical_id", v.ID.String()))
	return v, nil
}

// UpdateVertical renames a vertical. Stories reference verticals by id, so
// the new name shows on every linked story.
func (s *Service) UpdateVertical(ctx context.Context, id uuid.UUID, input VerticalInput) (*domain.Vertical, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.verticals.Update(ctx, id, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateVertical: %w", verticalConflict(err))
	}
	return v, nil
}

// DeleteVertical removes a vertical. Linked stories keep existing with no vertical.
func (s *Service) DeleteVertical(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.verticals.Delete(ctx, id); err != nil {
		return fmt.Errorf("admin.DeleteVertical: %w", err)
	}

	s.log.InfoContext(ctx, "vertical deleted", slog.String("vertical_id", id.String()))
	return nil
}

func verticalConflict(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewAlreadyExists("vertical already exists")
	}
	return err
}
