// Package admin implements the admin console: user management, tag and
// vertical catalogs, story moderation and the audit log viewer. Every
// operation requires the admin role on the caller.
package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/config"
	"github.com/heartmarshall/pentest-stories/internal/domain"
	"github.com/heartmarshall/pentest-stories/internal/service/story"
	"github.com/heartmarshall/pentest-stories/pkg/ctxutil"
)

type profileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.Profile, error)
}

type roleRepo interface {
	GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
	GetByUserIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserRole, error)
	GrantAdmin(ctx context.Context, target, grantedBy uuid.UUID) error
}

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name, color string) (*domain.Tag, error)
	Update(ctx context.Context, id uuid.UUID, name, color string) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type verticalRepo interface {
	List(ctx context.Context) ([]domain.Vertical, error)
	Create(ctx context.Context, name string, description *string) (*domain.Vertical, error)
	Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Vertical, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyDirectory interface {
	ListStories(ctx context.Context, filter domain.StoryFilter) (*story.Page, error)
}

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type passwordResetter interface {
	ResetPassword(ctx context.Context, targetID uuid.UUID, newPassword string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin console operations.
type Service struct {
	log       *slog.Logger
	profiles  profileRepo
	roles     roleRepo
	tags      tagRepo
	verticals verticalRepo
	stories   storyRepo
	directory storyDirectory
	audit     auditRepo
	resetter  passwordResetter
	tx        txManager
	cfg       config.AdminConfig
	genPass   func() (string, error)
}

// Deps groups the collaborators of the admin service.
type Deps struct {
	Profiles  profileRepo
	Roles     roleRepo
	Tags      tagRepo
	Verticals verticalRepo
	Stories   storyRepo
	Directory storyDirectory
	Audit     auditRepo
	Resetter  passwordResetter
	Tx        txManager
}

// NewService creates a new admin service. genPass produces temporary
// passwords for ResetUserPassword.
func NewService(logger *slog.Logger, deps Deps, cfg config.AdminConfig, genPass func() (string, error)) *Service {
	return &Service{
		log:       logger.With("service", "admin"),
		profiles:  deps.Profiles,
		roles:     deps.Roles,
		tags:      deps.Tags,
		verticals: deps.Verticals,
		stories:   deps.Stories,
		directory: deps.Directory,
		audit:     deps.Audit,
		resetter:  deps.Resetter,
		tx:        deps.Tx,
		cfg:       cfg,
		genPass:   genPass,
	}
}

// requireAdmin returns the caller's id or ErrForbidden.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// auditEntry builds an entry attributed to the caller with client metadata.
func auditEntry(ctx context.Context, actor uuid.UUID, action domain.AuditAction, table, recordID string) domain.AuditEntry {
	e := domain.AuditEntry{
		UserID:    &actor,
		Action:    action,
		TableName: table,
		RecordID:  &recordID,
	}
	info := ctxutil.ClientInfoFromCtx(ctx)
	domain.RequestMeta{IPAddress: info.IP, UserAgent: info.UserAgent}.Apply(&e)
	return e
}
