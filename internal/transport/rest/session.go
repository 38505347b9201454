package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/session"
)

type sessionService interface {
	SignIn(ctx context.Context, input session.SignInInput) (*session.Session, error)
	SignUp(ctx context.Context, input session.SignUpInput) (*session.Session, error)
	SignOut(ctx context.Context) error
	Refresh(ctx context.Context, input session.RefreshInput) (*session.Session, error)
	Current(ctx context.Context) (*domain.UserWithRole, error)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.Profile, error)
	ChangePassword(ctx context.Context, input session.ChangePasswordInput) error
}

// SessionHandler serves sign-in, sign-up and the caller's own profile.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	DisplayName      string  `json:"displayName"`
	Department       *string `json:"department"`
	BusinessVertical *string `json:"businessVertical"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type profilePatchRequest struct {
	DisplayName      *string `json:"displayName"`
	Department       *string `json:"department"`
	BusinessVertical *string `json:"businessVertical"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SignIn handles POST /auth/sign-in.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !bind(w, r, &req) {
		return
	}
	sess, err := h.svc.SignIn(r.Context(), session.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(sess))
}

// SignUp handles POST /auth/sign-up.
func (h *SessionHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !bind(w, r, &req) {
		return
	}
	sess, err := h.svc.SignUp(r.Context(), session.SignUpInput{
		Email:            req.Email,
		Password:         req.Password,
		DisplayName:      req.DisplayName,
		Department:       req.Department,
		BusinessVertical: req.BusinessVertical,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSession(sess))
}

// Refresh handles POST /auth/refresh.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !bind(w, r, &req) {
		return
	}
	sess, err := h.svc.Refresh(r.Context(), session.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(sess))
}

// SignOut handles POST /auth/sign-out.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me.
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Current(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

// UpdateProfile handles PATCH /me/profile.
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profilePatchRequest
	if !bind(w, r, &req) {
		return
	}
	profile, err := h.svc.UpdateProfile(r.Context(), domain.ProfilePatch{
		DisplayName:      req.DisplayName,
		Department:       req.Department,
		BusinessVertical: req.BusinessVertical,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(*profile))
}

// ChangePassword handles POST /me/password.
func (h *SessionHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !bind(w, r, &req) {
		return
	}
	err := h.svc.ChangePassword(r.Context(), session.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
