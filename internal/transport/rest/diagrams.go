package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/service/diagram"
)

type diagramService interface {
	AttachToStory(ctx context.Context, storyID uuid.UUID, ref string) (string, error)
	AttachUpload(ctx context.Context, storyID uuid.UUID, contentType string, data []byte) (string, error)
	Generate(ctx context.Context, storyID uuid.UUID) (*diagram.Generated, error)
}

// DiagramHandler serves the kill chain template registry and diagram
// attachment for stories.
type DiagramHandler struct {
	svc diagramService
	log *slog.Logger
}

func NewDiagramHandler(svc diagramService, logger *slog.Logger) *DiagramHandler {
	return &DiagramHandler{svc: svc, log: logger.With("handler", "diagram")}
}

type templateResponse struct {
	Name     string   `json:"name"`
	Trigger  string   `json:"trigger,omitempty"`
	Phases   []string `json:"phases"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Preview  string   `json:"preview,omitempty"`
}

type attachRequest struct {
	Ref string `json:"ref"`
}

type diagramResponse struct {
	Template string `json:"template,omitempty"`
	Ref      string `json:"ref"`
}

func toTemplate(t diagram.Template) templateResponse {
	return templateResponse{
		Name:     string(t.Name),
		Trigger:  t.Trigger,
		Phases:   t.Phases,
		ImageURL: t.ImageURL,
	}
}

// Templates handles GET /diagrams/templates.
func (h *DiagramHandler) Templates(w http.ResponseWriter, r *http.Request) {
	all := diagram.Templates()
	out := make([]templateResponse, len(all))
	for i, t := range all {
		out[i] = toTemplate(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// Template handles GET /diagrams/templates/{name}. The response carries a
// rendered SVG preview; with Accept: image/svg+xml the SVG itself is sent.
func (h *DiagramHandler) Template(w http.ResponseWriter, r *http.Request) {
	t, err := diagram.Lookup(r.PathValue("name"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if r.Header.Get("Accept") == "image/svg+xml" {
		svg, err := diagram.RenderSVG(t)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		w.Write(svg) //nolint:errcheck
		return
	}

	preview, err := diagram.Render(t)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	resp := toTemplate(t)
	resp.Preview = preview
	writeJSON(w, http.StatusOK, resp)
}

// Attach handles POST /stories/{id}/diagram. A JSON body carries a
// reference; an image/png body is an upload.
func (h *DiagramHandler) Attach(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "" || mediaType == "application/json" {
		var req attachRequest
		if !bind(w, r, &req) {
			return
		}
		ref, err := h.svc.AttachToStory(r.Context(), id, req.Ref)
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, diagramResponse{Ref: ref})
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ref, err := h.svc.AttachUpload(r.Context(), id, r.Header.Get("Content-Type"), data)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, diagramResponse{Ref: ref})
}

// Generate handles POST /stories/{id}/diagram/generate.
func (h *DiagramHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	gen, err := h.svc.Generate(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, diagramResponse{Template: string(gen.Template.Name), Ref: gen.Ref})
}
