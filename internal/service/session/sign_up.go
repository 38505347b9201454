package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// SignUp creates credentials and a profile in one transaction and signs the
// new user in. No role row is written; new users are regular users.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("session.SignUp: %w", err)
	}

	// Step 3: Create user + profile in a transaction.
	// Email uniqueness is enforced by the users unique index.
	var profile *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		profile, err = s.profiles.Create(txCtx, &domain.Profile{
			ID:               user.ID,
			Email:            user.Email,
			DisplayName:      input.DisplayName,
			Department:       input.Department,
			BusinessVertical: input.BusinessVertical,
			Status:           domain.UserStatusActive,
		})
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("session.SignUp: %w", domain.NewAlreadyExists("email already registered"))
		}
		return nil, fmt.Errorf("session.SignUp: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, domain.UserWithRole{Profile: *profile, Role: domain.UserRoleUser})
	if err != nil {
		return nil, fmt.Errorf("session.SignUp issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", profile.ID.String()))
	return result, nil
}
