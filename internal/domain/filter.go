package domain

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// StoryFilter contains the in-memory filter, sort and pagination parameters
// applied to a resolved story listing.
type StoryFilter struct {
	Search     string
	Tag        string
	VerticalID *uuid.UUID
	Region     string
	Sort       StorySort
	Limit      int
	Offset     int

	// SearchAuthorEmail extends Search to the author's email (moderation view).
	SearchAuthorEmail bool
}

// FilterStories returns the stories matching every non-empty criterion of f.
// The input slice is not modified. An empty filter returns all stories.
func FilterStories(stories []Story, f StoryFilter) []Story {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if needle != "" && !matchesSearch(s, needle, f.SearchAuthorEmail) {
			continue
		}
		if f.Tag != "" && !s.HasTag(f.Tag) {
			continue
		}
		if f.VerticalID != nil && (s.VerticalID == nil || *s.VerticalID != *f.VerticalID) {
			continue
		}
		if f.Region != "" && (s.Region == nil || *s.Region != f.Region) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s Story, needle string, withEmail bool) bool {
	if strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Content), needle) ||
		strings.Contains(strings.ToLower(s.Author.DisplayName), needle) {
		return true
	}
	return withEmail && strings.Contains(strings.ToLower(s.Author.Email), needle)
}

// SortStories sorts stories in place. Unknown or empty sort means newest first.
// Title order is case-insensitive and stable for equal titles.
func SortStories(stories []Story, sort StorySort) {
	switch sort {
	case StorySortOldest:
		slices.SortStableFunc(stories, func(a, b Story) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case StorySortTitle:
		slices.SortStableFunc(stories, func(a, b Story) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		slices.SortStableFunc(stories, func(a, b Story) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

// Paginate returns the [offset, offset+limit) window. limit <= 0 means no limit.
func Paginate(stories []Story, limit, offset int) []Story {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(stories) {
		return []Story{}
	}
	end := len(stories)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return stories[offset:end]
}

// ApplyStoryFilter runs filter, sort and pagination, returning the page and
// the total number of matches before pagination.
func ApplyStoryFilter(stories []Story, f StoryFilter) ([]Story, int) {
	matched := FilterStories(stories, f)
	SortStories(matched, f.Sort)
	return Paginate(matched, f.Limit, f.Offset), len(matched)
}
