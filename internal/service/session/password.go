package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pentest-stories/internal/auth"
	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

// ChangePassword re-authenticates the caller with the current password,
// stores the new hash and revokes every refresh token of the caller.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Re-authenticate
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("session.ChangePassword get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, input.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("session.ChangePassword compare: %w", err)
	}

	// Step 3: Hash and store
	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("session.ChangePassword: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, userID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}
