// Package session implements the identity provider: sign-in, sign-up,
// token refresh and sign-out, plus self-service profile and password changes.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/config"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error)
}

type roleRepo interface {
	GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements session operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	profiles profileRepo
	roles    roleRepo
	tokens   tokenRepo
	tx       txManager
	jwt      jwtManager
	hasher   passwordHasher
	cfg      config.AuthConfig
}

// NewService creates a new session service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	roles roleRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		users:    users,
		profiles: profiles,
		roles:    roles,
		tokens:   tokens,
		tx:       tx,
		jwt:      jwt,
		hasher:   hasher,
		cfg:      cfg,
	}
}

// issueTokens signs an access token carrying the role, stores the hash of a
// fresh refresh token and returns the session.
func (s *Service) issueTokens(ctx context.Context, user domain.UserWithRole) (*Session, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		User:         user,
	}, nil
}
