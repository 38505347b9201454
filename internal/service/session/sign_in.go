package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pentest-stories/internal/auth"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// SignIn authenticates with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// ErrForbidden if the profile is blocked or deleted.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*Session, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find credentials
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("session.SignIn get user: %w", err)
	}

	// Step 3: Verify password
	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.log.WarnContext(ctx, "password compare failed",
				slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Resolve profile and role
	resolved, err := s.resolve(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("session.SignIn: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, *resolved)
	if err != nil {
		return nil, fmt.Errorf("session.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}
