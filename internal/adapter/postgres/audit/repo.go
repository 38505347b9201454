// Package audit implements the append-only audit log repository using
// PostgreSQL. There is no update or delete path.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/adapter/postgres"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

var columns = []string{
	"id", "user_id", "action", "table_name", "record_id",
	"old_values", "new_values", "ip_address", "user_agent", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    *uuid.UUID `db:"user_id"`
	Action    string     `db:"action"`
	TableName string     `db:"table_name"`
	RecordID  *string    `db:"record_id"`
	OldValues []byte     `db:"old_values"`
	NewValues []byte     `db:"new_values"`
	IPAddress *string    `db:"ip_address"`
	UserAgent *string    `db:"user_agent"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r row) toDomain() (domain.AuditEntry, error) {
	e := domain.AuditEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Action:    domain.AuditAction(r.Action),
		TableName: r.TableName,
		RecordID:  r.RecordID,
		IPAddress: r.IPAddress,
		UserAgent: r.UserAgent,
		CreatedAt: r.CreatedAt,
	}

	var err error
	if e.OldValues, err = unmarshalValues(r.OldValues); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_log %s old_values: %w", r.ID, err)
	}
	if e.NewValues, err = unmarshalValues(r.NewValues); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_log %s new_values: %w", r.ID, err)
	}
	return e, nil
}

func unmarshalValues(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func marshalValues(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Create appends an audit entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	oldJSON, err := marshalValues(e.OldValues)
	if err != nil {
		return nil, fmt.Errorf("audit_log marshal old_values: %w", err)
	}
	newJSON, err := marshalValues(e.NewValues)
	if err != nil {
		return nil, fmt.Errorf("audit_log marshal new_values: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("audit_logs").
		Columns("id", "user_id", "action", "table_name", "record_id",
			"old_values", "new_values", "ip_address", "user_agent").
		Values(e.ID, e.UserID, string(e.Action), e.TableName, e.RecordID,
			oldJSON, newJSON, e.IPAddress, e.UserAgent).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&e.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "audit_log", e.ID)
	}
	return &e, nil
}

// ListRecent returns the latest limit entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("audit_logs").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_log", "list")
	}

	out := make([]domain.AuditEntry, 0, len(rows))
	for _, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
