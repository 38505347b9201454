// Package story implements the story directory and the author workflow:
// listing with in-memory filtering, story CRUD with tag associations and
// ad-hoc tag creation.
package story

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

type storyRepo interface {
	List(ctx context.Context, authorID *uuid.UUID) ([]domain.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	Create(ctx context.Context, s *domain.Story) (uuid.UUID, error)
	Update(ctx context.Context, s *domain.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, authorID *uuid.UUID) (int, error)
	Regions(ctx context.Context) ([]string, error)
}

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByNameCI(ctx context.Context, name string) (*domain.Tag, error)
	Create(ctx context.Context, name, color string) (*domain.Tag, error)
	GetByStoryIDs(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
	ReplaceForStory(ctx context.Context, storyID uuid.UUID, tagIDs []uuid.UUID) error
}

type verticalRepo interface {
	List(ctx context.Context) ([]domain.Vertical, error)
	ListInUse(ctx context.Context) ([]domain.Vertical, error)
}

type profileCounter interface {
	Count(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides story directory and authoring operations.
type Service struct {
	log       *slog.Logger
	stories   storyRepo
	tags      tagRepo
	verticals verticalRepo
	profiles  profileCounter
	tx        txManager
	pickColor func() string
}

// NewService creates a new story service.
func NewService(
	logger *slog.Logger,
	stories storyRepo,
	tags tagRepo,
	verticals verticalRepo,
	profiles profileCounter,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "story"),
		stories:   stories,
		tags:      tags,
		verticals: verticals,
		profiles:  profiles,
		tx:        tx,
		pickColor: randomPaletteColor,
	}
}

func randomPaletteColor() string {
	return domain.TagPalette[rand.IntN(len(domain.TagPalette))]
}
