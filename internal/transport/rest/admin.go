package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/admin"
	"github.com/heartmarshall/pentest-stories/internal/service/story"
	"github.com/heartmarshall/pentest-stories/internal/transport/dataloader"
)

type adminService interface {
	ListUsers(ctx context.Context) ([]domain.UserWithRole, error)
	PromoteUser(ctx context.Context, userID uuid.UUID) (*domain.UserWithRole, error)
	PromoteByEmail(ctx context.Context, email string) (*domain.UserWithRole, error)
	BlockUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UnblockUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	ResetUserPassword(ctx context.Context, userID uuid.UUID) (string, error)

	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, input admin.TagInput) (*domain.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, input admin.TagInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	ListVerticals(ctx context.Context) ([]domain.Vertical, error)
	CreateVertical(ctx context.Context, input admin.VerticalInput) (*domain.Vertical, error)
	UpdateVertical(ctx context.Context, id uuid.UUID, input admin.VerticalInput) (*domain.Vertical, error)
	DeleteVertical(ctx context.Context, id uuid.UUID) error

	ListStories(ctx context.Context, search string) (*story.Page, error)
	DeleteStory(ctx context.Context, id uuid.UUID) error
	ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// AdminHandler serves the admin console.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type promoteByEmailRequest struct {
	Email string `json:"email"`
}

type tagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type verticalRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type tempPasswordResponse struct {
	TemporaryPassword string `json:"temporaryPassword"`
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	writeJSON(w, http.StatusOK, out)
}

// Promote handles POST /admin/users/{id}/promote.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.svc.PromoteUser(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

// PromoteByEmail handles POST /admin/users/promote-by-email.
func (h *AdminHandler) PromoteByEmail(w http.ResponseWriter, r *http.Request) {
	var req promoteByEmailRequest
	if !bind(w, r, &req) {
		return
	}
	user, err := h.svc.PromoteByEmail(r.Context(), req.Email)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

// Block handles POST /admin/users/{id}/block.
func (h *AdminHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.BlockUser)
}

// Unblock handles POST /admin/users/{id}/unblock.
func (h *AdminHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.UnblockUser)
}

// DeleteUser handles POST /admin/users/{id}/delete. Profiles are soft-deleted.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.DeleteUser)
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Profile, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	profile, err := op(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(*profile))
}

// ResetPassword handles POST /admin/users/{id}/reset-password. The generated
// temporary password is returned once and never stored in plain text.
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	pass, err := h.svc.ResetUserPassword(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, tempPasswordResponse{TemporaryPassword: pass})
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// ListTags handles GET /admin/tags.
func (h *AdminHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTags(tags))
}

// CreateTag handles POST /admin/tags.
func (h *AdminHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !bind(w, r, &req) {
		return
	}
	tag, err := h.svc.CreateTag(r.Context(), admin.TagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTag(*tag))
}

// UpdateTag handles PUT /admin/tags/{id}.
func (h *AdminHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req tagRequest
	if !bind(w, r, &req) {
		return
	}
	tag, err := h.svc.UpdateTag(r.Context(), id, admin.TagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTag(*tag))
}

// DeleteTag handles DELETE /admin/tags/{id}.
func (h *AdminHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteTag)
}

// ListVerticals handles GET /admin/verticals.
func (h *AdminHandler) ListVerticals(w http.ResponseWriter, r *http.Request) {
	verticals, err := h.svc.ListVerticals(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerticals(verticals))
}

// CreateVertical handles POST /admin/verticals.
func (h *AdminHandler) CreateVertical(w http.ResponseWriter, r *http.Request) {
	var req verticalRequest
	if !bind(w, r, &req) {
		return
	}
	v, err := h.svc.CreateVertical(r.Context(), admin.VerticalInput{Name: req.Name, Description: req.Description})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVertical(*v))
}

// UpdateVertical handles PUT /admin/verticals/{id}.
func (h *AdminHandler) UpdateVertical(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req verticalRequest
	if !bind(w, r, &req) {
		return
	}
	v, err := h.svc.UpdateVertical(r.Context(), id, admin.VerticalInput{Name: req.Name, Description: req.Description})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVertical(*v))
}

// DeleteVertical handles DELETE /admin/verticals/{id}.
func (h *AdminHandler) DeleteVertical(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteVertical)
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Moderation
// ---------------------------------------------------------------------------

// ListStories handles GET /admin/stories?search=.
func (h *AdminHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListStories(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryPage(page.Stories, page.Total, true))
}

// DeleteStory handles DELETE /admin/stories/{id}.
func (h *AdminHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.svc.DeleteStory)
}

// AuditLogs handles GET /admin/audit-logs?limit=. Actors are resolved
// through the request's dataloader in one batched query.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListAuditLogs(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	actors, err := h.loadActors(r.Context(), entries)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toAuditEntry(e, actors[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) loadActors(ctx context.Context, entries []domain.AuditEntry) ([]*domain.Profile, error) {
	actors := make([]*domain.Profile, len(entries))
	loaders := dataloader.FromContext(ctx)
	if loaders == nil {
		return actors, nil
	}

	thunks := make([]func() (*domain.Profile, error), len(entries))
	for i, e := range entries {
		if e.UserID != nil {
			thunks[i] = loaders.ProfileByID.Load(ctx, *e.UserID)
		}
	}
	for i, th := range thunks {
		if th == nil {
			continue
		}
		p, err := th()
		if err != nil {
			return nil, err
		}
		actors[i] = p
	}
	return actors, nil
}
