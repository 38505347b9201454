package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// ListUsers returns every profile merged with its role, newest first.
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserWithRole, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers: %w", err)
	}

	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	roles, err := s.roles.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers roles: %w", err)
	}

	out := make([]domain.UserWithRole, len(profiles))
	for i, p := range profiles {
		role, ok := roles[p.ID]
		if !ok {
			role = domain.UserRoleUser
		}
		out[i] = domain.UserWithRole{Profile: p, Role: role}
	}
	return out, nil
}

// PromoteUser grants the admin role through the privileged database function.
func (s *Service) PromoteUser(ctx context.Context, userID uuid.UUID) (*domain.UserWithRole, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.promote(ctx, caller, userID); err != nil {
		return nil, fmt.Errorf("admin.PromoteUser: %w", err)
	}
	return s.userWithRole(ctx, userID)
}

// PromoteByEmail looks the profile up by email and promotes it.
func (s *Service) PromoteByEmail(ctx context.Context, email string) (*domain.UserWithRole, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("admin.PromoteByEmail: %w", err)
	}

	if err := s.promote(ctx, caller, profile.ID); err != nil {
		return nil, fmt.Errorf("admin.PromoteByEmail: %w", err)
	}
	return s.userWithRole(ctx, profile.ID)
}

func (s *Service) promote(ctx context.Context, caller, target uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.roles.GrantAdmin(txCtx, target, caller); err != nil {
			return fmt.Errorf("grant admin: %w", err)
		}

		entry := auditEntry(ctx, caller, domain.AuditActionRoleGranted, "user_roles", target.String())
		entry.NewValues = map[string]any{"role": string(domain.UserRoleAdmin)}
		if _, err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("user_id", target.String()), slog.String("granted_by", caller.String()))
	return nil
}

// BlockUser sets the user's status to blocked.
func (s *Service) BlockUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.setStatus(ctx, userID, domain.UserStatusBlocked)
}

// UnblockUser sets the user's status back to active.
func (s *Service) UnblockUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.setStatus(ctx, userID, domain.UserStatusActive)
}

// DeleteUser soft-deletes the user by status.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.setStatus(ctx, userID, domain.UserStatusDeleted)
}

func (s *Service) setStatus(ctx context.Context, userID uuid.UUID, status domain.UserStatus) (*domain.Profile, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if caller == userID {
		return nil, fmt.Errorf("cannot change own status: %w", domain.ErrForbidden)
	}

	var updated *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.profiles.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		updated, err = s.profiles.SetStatus(txCtx, userID, status)
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		entry := auditEntry(ctx, caller, domain.AuditActionUserStatusChanged, "profiles", userID.String())
		entry.OldValues = map[string]any{"status": string(before.Status)}
		entry.NewValues = map[string]any{"status": string(status)}
		if _, err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("admin.setStatus: %w", err)
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("user_id", userID.String()),
		slog.String("status", string(status)),
		slog.String("changed_by", caller.String()),
	)
	return updated, nil
}

// ResetUserPassword sets a generated temporary password on the user and
// returns it once. The plaintext is never stored or logged.
func (s *Service) ResetUserPassword(ctx context.Context, userID uuid.UUID) (string, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return "", err
	}

	temp, err := s.genPass()
	if err != nil {
		return "", fmt.Errorf("admin.ResetUserPassword generate: %w", err)
	}

	if err := s.resetter.ResetPassword(ctx, userID, temp); err != nil {
		return "", fmt.Errorf("admin.ResetUserPassword: %w", err)
	}
	return temp, nil
}

func (s *Service) userWithRole(ctx context.Context, userID uuid.UUID) (*domain.UserWithRole, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("admin: get profile: %w", err)
	}
	role, err := s.roles.GetRole(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("admin: get role: %w", err)
	}
	return &domain.UserWithRole{Profile: *profile, Role: role}, nil
}
