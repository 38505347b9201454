package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

// CreateStory inserts a story and its tag associations in one transaction.
// Unknown tag or vertical ids return ErrNotFound.
func (s *Service) CreateStory(ctx context.Context, input StoryInput) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 1: Normalize, validate and sanitize
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.sanitize()

	// Step 2: Insert story + tags
	var storyID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		id, err := s.stories.Create(txCtx, &domain.Story{
			Title:      input.Title,
			Content:    input.Content,
			AuthorID:   userID,
			VerticalID: input.VerticalID,
			Region:     input.Region,
			DiagramURL: input.DiagramURL,
		})
		if err != nil {
			return fmt.Errorf("create story: %w", err)
		}
		if err := s.tags.ReplaceForStory(txCtx, id, input.TagIDs); err != nil {
			return fmt.Errorf("set tags: %w", err)
		}
		storyID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("story.CreateStory: %w", err)
	}

	s.log.InfoContext(ctx, "story created",
		slog.String("user_id", userID.String()),
		slog.String("story_id", storyID.String()),
		slog.Int("tags", len(input.TagIDs)),
	)

	// Step 3: Return the fresh joined row
	story, err := s.get(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("story.CreateStory reload: %w", err)
	}
	return story, nil
}

// UpdateStory updates a story and fully replaces its tag set.
// Only the author or an admin may update; others get ErrForbidden.
func (s *Service) UpdateStory(ctx context.Context, id uuid.UUID, input StoryInput) (*domain.Story, error) {
	// Step 1: Authorize
	existing, err := s.editable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateStory: %w", err)
	}

	// Step 2: Normalize, validate and sanitize
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.sanitize()

	// Step 3: Update row and replace tags
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.stories.Update(txCtx, &domain.Story{
			ID:         id,
			Title:      input.Title,
			Content:    input.Content,
			AuthorID:   existing.AuthorID,
			VerticalID: input.VerticalID,
			Region:     input.Region,
			DiagramURL: input.DiagramURL,
		}); err != nil {
			return fmt.Errorf("update story: %w", err)
		}
		if err := s.tags.ReplaceForStory(txCtx, id, input.TagIDs); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("story.UpdateStory: %w", err)
	}

	s.log.InfoContext(ctx, "story updated", slog.String("story_id", id.String()))

	story, err := s.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.UpdateStory reload: %w", err)
	}
	return story, nil
}

// DeleteStory hard-deletes a story. Only the author or an admin may delete.
func (s *Service) DeleteStory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.editable(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteStory: %w", err)
	}

	if err := s.stories.Delete(ctx, id); err != nil {
		return fmt.Errorf("story.DeleteStory: %w", err)
	}

	s.log.InfoContext(ctx, "story deleted", slog.String("story_id", id.String()))
	return nil
}

// editable loads the story and checks the caller may modify it.
func (s *Service) editable(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !story.EditableBy(userID, ctxutil.IsAdminCtx(ctx)) {
		return nil, domain.ErrForbidden
	}
	return story, nil
}
