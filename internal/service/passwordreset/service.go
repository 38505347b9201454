// Package passwordreset lets an admin set another user's password. The
// caller's identity and role are re-read from storage rather than trusted
// from the access token. The update and its audit entry commit together.
package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/session"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

// AuditTable is the table name recorded on password reset audit entries.
const AuditTable = "auth.users"

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type roleRepo interface {
	GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error)
}

type auditPublisher interface {
	PublishAudit(ctx context.Context, e domain.AuditEntry) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service performs admin password resets.
type Service struct {
	log       *slog.Logger
	users     userRepo
	roles     roleRepo
	tokens    tokenRepo
	audit     auditRepo
	publisher auditPublisher
	hasher    passwordHasher
	tx        txManager
}

// NewService creates a new password reset service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleRepo,
	tokens tokenRepo,
	audit auditRepo,
	publisher auditPublisher,
	hasher passwordHasher,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "passwordreset"),
		users:     users,
		roles:     roles,
		tokens:    tokens,
		audit:     audit,
		publisher: publisher,
		hasher:    hasher,
		tx:        tx,
	}
}

// Input is the body of a reset request.
type Input struct {
	UserID      string
	NewPassword string
}

// Validate checks the target id and the password policy.
func (i Input) Validate() (uuid.UUID, error) {
	var errs []domain.FieldError

	target, err := uuid.Parse(i.UserID)
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	} else if err != nil || target == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "invalid user id"})
	}

	if perr := session.ValidatePassword(i.NewPassword); perr != nil {
		var ve *domain.ValidationError
		if errors.As(perr, &ve) {
			for _, fe := range ve.Errors {
				errs = append(errs, domain.FieldError{Field: "newPassword", Message: fe.Message})
			}
		}
	}

	if len(errs) > 0 {
		return uuid.Nil, &domain.ValidationError{Errors: errs}
	}
	return target, nil
}

// Reset validates input and resets the target's password on behalf of
// caller, who must have passed Authorize.
func (s *Service) Reset(ctx context.Context, caller uuid.UUID, input Input) error {
	target, err := input.Validate()
	if err != nil {
		return err
	}
	return s.reset(ctx, caller, target, input.NewPassword)
}

// ResetPassword authorizes the caller in ctx and resets the target's password.
func (s *Service) ResetPassword(ctx context.Context, targetID uuid.UUID, newPassword string) error {
	caller, err := s.Authorize(ctx)
	if err != nil {
		return err
	}
	return s.Reset(ctx, caller, Input{UserID: targetID.String(), NewPassword: newPassword})
}

// Authorize re-resolves the caller from storage and requires the admin role
// recorded in user_roles. A missing caller is ErrUnauthorized, a non-admin
// ErrForbidden.
func (s *Service) Authorize(ctx context.Context) (uuid.UUID, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	if _, err := s.users.GetByID(ctx, caller); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("passwordreset: resolve caller: %w", err)
	}

	role, err := s.roles.GetRole(ctx, caller)
	if err != nil {
		return uuid.Nil, fmt.Errorf("passwordreset: get role: %w", err)
	}
	if !role.IsAdmin() {
		s.log.WarnContext(ctx, "password reset denied", slog.String("user_id", caller.String()))
		return uuid.Nil, domain.ErrForbidden
	}
	return caller, nil
}

func (s *Service) reset(ctx context.Context, caller, target uuid.UUID, newPassword string) error {
	// Step 1: Hash
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("passwordreset: hash: %w", err)
	}

	// Step 2: Update, audit and revoke sessions atomically
	var entry *domain.AuditEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, target, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		record := target.String()
		e := domain.AuditEntry{
			UserID:    &caller,
			Action:    domain.AuditActionPasswordReset,
			TableName: AuditTable,
			RecordID:  &record,
			NewValues: map[string]any{"reset_by_admin": true},
		}
		info := ctxutil.ClientInfoFromCtx(ctx)
		domain.RequestMeta{IPAddress: info.IP, UserAgent: info.UserAgent}.Apply(&e)

		created, err := s.audit.Create(txCtx, e)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		entry = created

		if err := s.tokens.RevokeAllByUser(txCtx, target); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("passwordreset: %w", err)
	}

	s.log.InfoContext(ctx, "password reset by admin",
		slog.String("user_id", target.String()), slog.String("admin_id", caller.String()))

	// Step 3: Stream the event; the reset already committed
	if err := s.publisher.PublishAudit(ctx, *entry); err != nil {
		s.log.WarnContext(ctx, "audit event publish failed",
			slog.String("action", string(entry.Action)), slog.String("error", err.Error()))
	}
	return nil
}
