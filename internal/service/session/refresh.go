package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/pentest-stories/internal/auth"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// Refresh performs token rotation and returns a new session.
// A revoked, reused or expired token returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*Session, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Look up the stored hash
	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("session.Refresh get token: %w", err)
	}

	// Step 3: Check expiry
	if token.IsExpired(time.Now()) || token.IsRevoked() {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Resolve the user; a blocked user cannot refresh
	resolved, err := s.resolve(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for missing user", slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("session.Refresh: %w", err)
	}

	// Step 5: Revoke old token
	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("session.Refresh revoke token: %w", err)
	}

	// Step 6: Issue new token pair
	result, err := s.issueTokens(ctx, *resolved)
	if err != nil {
		return nil, fmt.Errorf("session.Refresh issue tokens: %w", err)
	}
	return result, nil
}
