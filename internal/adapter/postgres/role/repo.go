// Package role reads user roles and grants admin through the privileged
// create_admin_user SQL function. There is no direct write path to user_roles.
package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/adapter/postgres"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// Repo provides role lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new role repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetRole returns the role of userID. A user without a role row is a
// regular user.
func (r *Repo) GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	sql, args, err := postgres.Builder().
		Select("role").
		From("user_roles").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build role query: %w", err)
	}

	var role string
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&role)
	if err != nil {
		mapped := postgres.MapError(err, "user_role", userID)
		if errors.Is(mapped, domain.ErrNotFound) {
			return domain.UserRoleUser, nil
		}
		return "", mapped
	}
	return domain.UserRole(role), nil
}

type roleRow struct {
	UserID uuid.UUID `db:"user_id"`
	Role   string    `db:"role"`
}

// GetByUserIDs returns the role of every user in ids. Users without a row
// map to domain.UserRoleUser.
func (r *Repo) GetByUserIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserRole, error) {
	out := make(map[uuid.UUID]domain.UserRole, len(ids))
	for _, id := range ids {
		out[id] = domain.UserRoleUser
	}
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select("user_id", "role").
		From("user_roles").
		Where("user_id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build role query: %w", err)
	}

	var rows []roleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_role", "batch")
	}
	for _, rw := range rows {
		out[rw.UserID] = domain.UserRole(rw.Role)
	}
	return out, nil
}

// GrantAdmin promotes target to admin via create_admin_user. An unknown
// target maps to domain.ErrNotFound; a grantedBy without the admin role
// maps to domain.ErrForbidden.
func (r *Repo) GrantAdmin(ctx context.Context, target, grantedBy uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `SELECT create_admin_user($1, $2)`, target, grantedBy)
	if err != nil {
		return postgres.MapError(err, "user_role", target)
	}
	return nil
}

// Bootstrap grants the admin role with no granter. It exists for operator
// tooling that runs with direct database access, before any admin exists.
func (r *Repo) Bootstrap(ctx context.Context, target uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `SELECT create_admin_user($1, NULL)`, target)
	if err != nil {
		return postgres.MapError(err, "user_role", target)
	}
	return nil
}
