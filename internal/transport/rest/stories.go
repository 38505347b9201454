package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/story"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

type storyService interface {
	ListStories(ctx context.Context, filter domain.StoryFilter) (*story.Page, error)
	ListMyStories(ctx context.Context, filter domain.StoryFilter) (*story.Page, error)
	GetStory(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	Facets(ctx context.Context) (*domain.StoryFacets, error)
	Stats(ctx context.Context) (*domain.StoryStats, error)
	CreateStory(ctx context.Context, input story.StoryInput) (*domain.Story, error)
	UpdateStory(ctx context.Context, id uuid.UUID, input story.StoryInput) (*domain.Story, error)
	DeleteStory(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]domain.Tag, error)
	ListVerticals(ctx context.Context) ([]domain.Vertical, error)
	CreateTag(ctx context.Context, input story.CreateTagInput) (*domain.Tag, error)
}

// StoryHandler serves the story directory, the author workflow and the
// public tag and vertical lists.
type StoryHandler struct {
	svc storyService
	log *slog.Logger
}

func NewStoryHandler(svc storyService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{svc: svc, log: logger.With("handler", "story")}
}

type storyRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	VerticalID *string  `json:"verticalId"`
	Region     *string  `json:"region"`
	TagIDs     []string `json:"tagIds"`
	DiagramURL *string  `json:"diagramUrl"`
}

func (req storyRequest) toInput() (story.StoryInput, error) {
	in := story.StoryInput{
		Title:      req.Title,
		Content:    req.Content,
		Region:     req.Region,
		DiagramURL: req.DiagramURL,
	}
	if req.VerticalID != nil && *req.VerticalID != "" {
		id, err := uuid.Parse(*req.VerticalID)
		if err != nil {
			return in, domain.NewValidationError("verticalId", "must be a UUID")
		}
		in.VerticalID = &id
	}
	for _, raw := range req.TagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, domain.NewValidationError("tagIds", "must be UUIDs")
		}
		in.TagIDs = append(in.TagIDs, id)
	}
	return in, nil
}

type facetsResponse struct {
	Regions   []string           `json:"regions"`
	Verticals []verticalResponse `json:"verticals"`
}

type statsResponse struct {
	TotalStories int `json:"totalStories"`
	MyStories    int `json:"myStories"`
	TotalUsers   int `json:"totalUsers"`
}

type createTagRequest struct {
	Name string `json:"name"`
}

// parseStoryFilter reads search, tag, verticalId, region, sort, limit and
// offset from the query string.
func parseStoryFilter(r *http.Request) (domain.StoryFilter, error) {
	q := r.URL.Query()
	f := domain.StoryFilter{
		Search: q.Get("search"),
		Tag:    q.Get("tag"),
		Region: q.Get("region"),
		Sort:   domain.StorySort(q.Get("sort")),
	}
	var errs []domain.FieldError
	if v := q.Get("verticalId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "verticalId", Message: "must be a UUID"})
		} else {
			f.VerticalID = &id
		}
	}
	for _, p := range []struct {
		key string
		dst *int
	}{{"limit", &f.Limit}, {"offset", &f.Offset}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.key, Message: "must be an integer"})
			continue
		}
		*p.dst = n
	}
	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// List handles GET /stories.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListStories)
}

// ListMine handles GET /stories/mine.
func (h *StoryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListMyStories)
}

func (h *StoryHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, domain.StoryFilter) (*story.Page, error)) {
	filter, err := parseStoryFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	page, err := fetch(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoryPage(page.Stories, page.Total, ctxutil.IsAdminCtx(r.Context())))
}

// Get handles GET /stories/{id}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, err := h.svc.GetStory(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStory(*s, ctxutil.IsAdminCtx(r.Context())))
}

// Facets handles GET /stories/facets.
func (h *StoryHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.svc.Facets(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	regions := facets.Regions
	if regions == nil {
		regions = []string{}
	}
	writeJSON(w, http.StatusOK, facetsResponse{Regions: regions, Verticals: toVerticals(facets.Verticals)})
}

// Stats handles GET /stories/stats.
func (h *StoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalStories: stats.TotalStories,
		MyStories:    stats.MyStories,
		TotalUsers:   stats.TotalUsers,
	})
}

// Create handles POST /stories.
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if !bind(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	s, err := h.svc.CreateStory(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toStory(*s, ctxutil.IsAdminCtx(r.Context())))
}

// Update handles PUT /stories/{id}.
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req storyRequest
	if !bind(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	s, err := h.svc.UpdateStory(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStory(*s, ctxutil.IsAdminCtx(r.Context())))
}

// Delete handles DELETE /stories/{id}.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteStory(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTags handles GET /tags.
func (h *StoryHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTags(tags))
}

// CreateTag handles POST /tags.
func (h *StoryHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if !bind(w, r, &req) {
		return
	}
	tag, err := h.svc.CreateTag(r.Context(), story.CreateTagInput{Name: req.Name})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTag(*tag))
}

// ListVerticals handles GET /verticals.
func (h *StoryHandler) ListVerticals(w http.ResponseWriter, r *http.Request) {
	verticals, err := h.svc.ListVerticals(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerticals(verticals))
}
