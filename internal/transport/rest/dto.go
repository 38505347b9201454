package rest

import (
	"time"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/session"
)

type tagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type verticalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StoryCount  int       `json:"storyCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type authorResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

type storyResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Region     *string           `json:"region"`
	DiagramURL *string           `json:"diagramUrl"`
	Author     authorResponse    `json:"author"`
	Vertical   *verticalResponse `json:"vertical"`
	Tags       []tagResponse     `json:"tags"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type storyPageResponse struct {
	Stories []storyResponse `json:"stories"`
	Total   int             `json:"total"`
}

type profileResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"displayName"`
	Department       *string   `json:"department"`
	BusinessVertical *string   `json:"businessVertical"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type userResponse struct {
	profileResponse
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

type sessionResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         userResponse `json:"user"`
}

type auditActorResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type auditEntryResponse struct {
	ID        string              `json:"id"`
	Action    string              `json:"action"`
	TableName string              `json:"tableName"`
	RecordID  *string             `json:"recordId"`
	OldValues map[string]any      `json:"oldValues"`
	NewValues map[string]any      `json:"newValues"`
	IPAddress *string             `json:"ipAddress"`
	UserAgent *string             `json:"userAgent"`
	Actor     *auditActorResponse `json:"actor"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toTag(t domain.Tag) tagResponse {
	return tagResponse{ID: t.ID.String(), Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

func toTags(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTag(t)
	}
	return out
}

func toVertical(v domain.Vertical) verticalResponse {
	return verticalResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		StoryCount:  v.StoryCount,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toVerticals(vs []domain.Vertical) []verticalResponse {
	out := make([]verticalResponse, len(vs))
	for i, v := range vs {
		out[i] = toVertical(v)
	}
	return out
}

// toStory renders a story. The author's email is only exposed to admins.
func toStory(s domain.Story, withEmail bool) storyResponse {
	resp := storyResponse{
		ID:         s.ID.String(),
		Title:      s.Title,
		Content:    s.Content,
		Region:     s.Region,
		DiagramURL: s.DiagramURL,
		Author: authorResponse{
			ID:          s.AuthorID.String(),
			DisplayName: s.Author.DisplayName,
		},
		Tags:      toTags(s.Tags),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if withEmail {
		resp.Author.Email = s.Author.Email
	}
	if s.Vertical != nil {
		v := toVertical(*s.Vertical)
		resp.Vertical = &v
	}
	return resp
}

func toStoryPage(stories []domain.Story, total int, withEmail bool) storyPageResponse {
	out := make([]storyResponse, len(stories))
	for i, s := range stories {
		out[i] = toStory(s, withEmail)
	}
	return storyPageResponse{Stories: out, Total: total}
}

func toProfile(p domain.Profile) profileResponse {
	return profileResponse{
		ID:               p.ID.String(),
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		Department:       p.Department,
		BusinessVertical: p.BusinessVertical,
		Status:           p.Status.String(),
		CreatedAt:        p.CreatedAt,
	}
}

func toUser(u domain.UserWithRole) userResponse {
	return userResponse{
		profileResponse: toProfile(u.Profile),
		Role:            u.Role.String(),
		IsAdmin:         u.IsAdmin(),
	}
}

func toSession(s *session.Session) sessionResponse {
	return sessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    int(s.ExpiresIn.Seconds()),
		User:         toUser(s.User),
	}
}

func toAuditEntry(e domain.AuditEntry, actor *domain.Profile) auditEntryResponse {
	resp := auditEntryResponse{
		ID:        e.ID.String(),
		Action:    e.Action.String(),
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldValues: e.OldValues,
		NewValues: e.NewValues,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt,
	}
	if actor != nil {
		resp.Actor = &auditActorResponse{
			ID:          actor.ID.String(),
			Email:       actor.Email,
			DisplayName: actor.DisplayName,
		}
	}
	return resp
}
