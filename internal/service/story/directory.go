package story

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

// Page is one window of a filtered story listing.
type Page struct {
	Stories []domain.Story
	Total   int
}

// ListStories returns all stories matching the filter.
func (s *Service) ListStories(ctx context.Context, filter domain.StoryFilter) (*Page, error) {
	page, err := s.list(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("story.ListStories: %w", err)
	}
	return page, nil
}

// ListMyStories returns the caller's stories matching the filter.
func (s *Service) ListMyStories(ctx context.Context, filter domain.StoryFilter) (*Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	page, err := s.list(ctx, &userID, filter)
	if err != nil {
		return nil, fmt.Errorf("story.ListMyStories: %w", err)
	}
	return page, nil
}

func (s *Service) list(ctx context.Context, authorID *uuid.UUID, filter domain.StoryFilter) (*Page, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	stories, err := s.stories.List(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	// Tag filtering needs tags on every row, so they are loaded before filtering.
	if err := s.attachTags(ctx, stories); err != nil {
		return nil, err
	}

	matched, total := domain.ApplyStoryFilter(stories, filter)
	return &Page{Stories: matched, Total: total}, nil
}

// attachTags loads the tags of all stories with one batched query.
func (s *Service) attachTags(ctx context.Context, stories []domain.Story) error {
	if len(stories) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(stories))
	for i := range stories {
		ids[i] = stories[i].ID
	}

	byStory, err := s.tags.GetByStoryIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load story tags: %w", err)
	}
	for i := range stories {
		if tags, ok := byStory[stories[i].ID]; ok {
			stories[i].Tags = tags
		} else {
			stories[i].Tags = []domain.Tag{}
		}
	}
	return nil
}

// GetStory returns one story with author, vertical and tags.
func (s *Service) GetStory(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := s.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("story.GetStory: %w", err)
	}
	return story, nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	one := []domain.Story{*story}
	if err := s.attachTags(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Facets returns the distinct regions and verticals in use.
func (s *Service) Facets(ctx context.Context) (*domain.StoryFacets, error) {
	var out domain.StoryFacets

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		regions, err := s.stories.Regions(gctx)
		if err != nil {
			return fmt.Errorf("regions: %w", err)
		}
		out.Regions = regions
		return nil
	})
	g.Go(func() error {
		verticals, err := s.verticals.ListInUse(gctx)
		if err != nil {
			return fmt.Errorf("verticals: %w", err)
		}
		out.Verticals = verticals
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("story.Facets: %w", err)
	}
	return &out, nil
}

// Stats returns the dashboard counters. The three counts run concurrently.
func (s *Service) Stats(ctx context.Context) (*domain.StoryStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out domain.StoryStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.stories.Count(gctx, nil)
		if err != nil {
			return fmt.Errorf("count stories: %w", err)
		}
		out.TotalStories = n
		return nil
	})
	g.Go(func() error {
		n, err := s.stories.Count(gctx, &userID)
		if err != nil {
			return fmt.Errorf("count my stories: %w", err)
		}
		out.MyStories = n
		return nil
	})
	g.Go(func() error {
		n, err := s.profiles.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		out.TotalUsers = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("story.Stats: %w", err)
	}
	return &out, nil
}
