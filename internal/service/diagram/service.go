// Package diagram builds kill chain diagrams for stories: a template
// registry keyed by story tags, SVG rendering, PNG upload validation and
// attachment of the resulting reference to a story.
package diagram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

type storyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	UpdateDiagram(ctx context.Context, id uuid.UUID, ref string) error
}

type tagRepo interface {
	GetByStoryIDs(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

// Service attaches diagrams to stories.
type Service struct {
	log     *slog.Logger
	stories storyRepo
	tags    tagRepo
}

// NewService creates a new diagram service.
func NewService(logger *slog.Logger, stories storyRepo, tags tagRepo) *Service {
	return &Service{
		log:     logger.With("service", "diagram"),
		stories: stories,
		tags:    tags,
	}
}

// Generated is the outcome of Generate.
type Generated struct {
	Template Template
	Ref      string
}

// AttachToStory validates ref and stores it as the story's diagram.
// Only the author or an admin may attach.
func (s *Service) AttachToStory(ctx context.Context, storyID uuid.UUID, ref string) (string, error) {
	// Step 1: Validate before touching storage
	clean, err := ParseReference(ref)
	if err != nil {
		return "", err
	}

	// Step 2: Authorize and store
	if err := s.store(ctx, storyID, clean); err != nil {
		return "", fmt.Errorf("diagram.AttachToStory: %w", err)
	}
	return clean, nil
}

// AttachUpload validates raw uploaded bytes and stores them as the story's diagram.
func (s *Service) AttachUpload(ctx context.Context, storyID uuid.UUID, contentType string, data []byte) (string, error) {
	ref, err := ValidateUpload(contentType, data)
	if err != nil {
		return "", err
	}

	if err := s.store(ctx, storyID, ref); err != nil {
		return "", fmt.Errorf("diagram.AttachUpload: %w", err)
	}
	return ref, nil
}

// Generate picks a template from the story's tags, renders it and stores it.
func (s *Service) Generate(ctx context.Context, storyID uuid.UUID) (*Generated, error) {
	st, err := s.editable(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("diagram.Generate: %w", err)
	}

	byStory, err := s.tags.GetByStoryIDs(ctx, []uuid.UUID{storyID})
	if err != nil {
		return nil, fmt.Errorf("diagram.Generate load tags: %w", err)
	}

	tmpl := Detect(byStory[st.ID])
	ref, err := Render(tmpl)
	if err != nil {
		return nil, fmt.Errorf("diagram.Generate: %w", err)
	}

	if err := s.stories.UpdateDiagram(ctx, storyID, ref); err != nil {
		return nil, fmt.Errorf("diagram.Generate store: %w", err)
	}

	s.log.InfoContext(ctx, "diagram generated",
		slog.String("story_id", storyID.String()), slog.String("template", string(tmpl.Name)))
	return &Generated{Template: tmpl, Ref: ref}, nil
}

func (s *Service) store(ctx context.Context, storyID uuid.UUID, ref string) error {
	if _, err := s.editable(ctx, storyID); err != nil {
		return err
	}
	if err := s.stories.UpdateDiagram(ctx, storyID, ref); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "diagram attached", slog.String("story_id", storyID.String()), slog.Int("ref_bytes", len(ref)))
	return nil
}

func (s *Service) editable(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if !st.EditableBy(userID, ctxutil.IsAdminCtx(ctx)) {
		return nil, domain.ErrForbidden
	}
	return st, nil
}
