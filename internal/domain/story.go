package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story is a user-authored narrative post with its resolved author,
// vertical and tag set.
type Story struct {
	ID         uuid.UUID
	Title      string
	Content    string
	AuthorID   uuid.UUID
	VerticalID *uuid.UUID
	Region     *string
	DiagramURL *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author   StoryAuthor
	Vertical *Vertical
	Tags     []Tag
}

// StoryAuthor is the denormalized author projection returned with a story.
type StoryAuthor struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
}

// HasTag reports whether the story carries a tag with exactly this name.
func (s Story) HasTag(name string) bool {
	for _, t := range s.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// TagIDs returns the ids of the story's tags in order.
func (s Story) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Tags))
	for i, t := range s.Tags {
		ids[i] = t.ID
	}
	return ids
}

// StoryStats are the dashboard counters.
type StoryStats struct {
	TotalStories int
	MyStories    int
	TotalUsers   int
}

// StoryFacets are the distinct filter values in use across stories.
type StoryFacets struct {
	Regions   []string
	Verticals []Vertical
}

// EditableBy reports whether userID may modify the story: its author or an admin.
func (s Story) EditableBy(userID uuid.UUID, isAdmin bool) bool {
	return isAdmin || (userID != uuid.Nil && s.AuthorID == userID)
}
