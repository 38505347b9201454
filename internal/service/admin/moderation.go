package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/story"
)

// ListStories returns all stories matching search over title, content,
// author name and author email, newest first.
func (s *Service) ListStories(ctx context.Context, search string) (*story.Page, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	page, err := s.directory.ListStories(ctx, domain.StoryFilter{
		Search:            search,
		Sort:              domain.StorySortNewest,
		SearchAuthorEmail: true,
	})
	if err != nil {
		return nil, fmt.Errorf("admin.ListStories: %w", err)
	}
	return page, nil
}

// DeleteStory hard-deletes a story and records the removal in the audit log.
func (s *Service) DeleteStory(ctx context.Context, id uuid.UUID) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		st, err := s.stories.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get story: %w", err)
		}
		if err := s.stories.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete story: %w", err)
		}

		entry := auditEntry(ctx, caller, domain.AuditActionStoryDeleted, "stories", id.String())
		entry.OldValues = map[string]any{
			"title":     st.Title,
			"author_id": st.AuthorID.String(),
		}
		if _, err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("admin.DeleteStory: %w", err)
	}

	s.log.InfoContext(ctx, "story removed by admin",
		slog.String("story_id", id.String()), slog.String("admin_id", caller.String()))
	return nil
}

// ListAuditLogs returns the newest entries. limit <= 0 or above the
// configured page size is clamped to the page size.
func (s *Service) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.cfg.AuditPageSize {
		limit = s.cfg.AuditPageSize
	}

	entries, err := s.audit.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("admin.ListAuditLogs: %w", err)
	}
	return entries, nil
}
