package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/passwordreset"
)

type passwordResetService interface {
	Authorize(ctx context.Context) (uuid.UUID, error)
	Reset(ctx context.Context, caller uuid.UUID, input passwordreset.Input) error
}

// FunctionHandler serves the standalone privileged functions.
type FunctionHandler struct {
	reset passwordResetService
	log   *slog.Logger
}

func NewFunctionHandler(reset passwordResetService, logger *slog.Logger) *FunctionHandler {
	return &FunctionHandler{reset: reset, log: logger.With("handler", "functions")}
}

type resetPasswordRequest struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

type resetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AdminResetPassword handles POST /functions/admin-reset-password.
// The caller is authorized before the body is read, so an anonymous or
// non-admin caller never learns whether its payload was well formed.
func (h *FunctionHandler) AdminResetPassword(w http.ResponseWriter, r *http.Request) {
	caller, err := h.reset.Authorize(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.reset.Reset(r.Context(), caller, passwordreset.Input{
		UserID:      req.UserID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.writeResetError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resetPasswordResponse{Success: true, Message: "Password reset successfully"})
}

// writeResetError reports every reset failure as 400.
func (h *FunctionHandler) writeResetError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields()})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusBadRequest, "user not found")
	default:
		h.log.ErrorContext(r.Context(), "password reset failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "failed to reset password")
	}
}
