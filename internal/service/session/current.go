package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

// resolve loads the profile and role of userID concurrently and rejects
// profiles that may not hold a session.
func (s *Service) resolve(ctx context.Context, userID uuid.UUID) (*domain.UserWithRole, error) {
	var (
		profile *domain.Profile
		role    domain.UserRole
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		r, err := s.roles.GetRole(gctx, userID)
		if err != nil {
			return fmt.Errorf("get role: %w", err)
		}
		role = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !profile.Status.CanSignIn() {
		return nil, fmt.Errorf("profile %s is %s: %w", userID, profile.Status, domain.ErrForbidden)
	}

	return &domain.UserWithRole{Profile: *profile, Role: role}, nil
}

// Current returns the caller's profile merged with the role stored in the
// database.
func (s *Service) Current(ctx context.Context) (*domain.UserWithRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session.Current: %w", err)
	}
	return u, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *Service) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	patch = normalizePatch(patch)
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	p, err := s.profiles.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("session.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return p, nil
}
