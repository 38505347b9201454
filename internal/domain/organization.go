package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a short labeled category, many-to-many with stories.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
}

// Vertical is a business vertical (industry/category) a story may belong to.
type Vertical struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StoryCount  int // computed field, not stored in DB
}

// AuditEntry is an append-only record of a privileged or sensitive action.
type AuditEntry struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Action    AuditAction
	TableName string
	RecordID  *string
	OldValues map[string]any
	NewValues map[string]any
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}

// RequestMeta is the optional client metadata attached to audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Apply copies non-empty request metadata onto the entry.
func (m RequestMeta) Apply(e *AuditEntry) {
	if m.IPAddress != "" {
		ip := m.IPAddress
		e.IPAddress = &ip
	}
	if m.UserAgent != "" {
		ua := m.UserAgent
		e.UserAgent = &ua
	}
}

// DefaultTagColor is used when an admin creates a tag without a color.
const DefaultTagColor = "#3b82f6"

// TagPalette is the set of colors assigned to ad-hoc tags.
var TagPalette = []string{
	"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4", "#3b82f6",
	"#8b5cf6", "#ec4899", "#f59e0b", "#10b981", "#6366f1",
}
