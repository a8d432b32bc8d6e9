package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chadpay/internal/pkg/audit"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// AuditRepo implements the audit repository interface
type AuditRepo struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// ListEntries returns entries matching filter in sequence order
func (r *AuditRepo) ListEntries(ctx context.Context, filter models.AuditFilter) ([]*models.AuditEntry, error) {
	var (
		conditions []string
		args       []interface{}
	)
	where := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.MerchantID != uuid.Nil {
		where("merchant_id = $%d", filter.MerchantID)
	}
	if filter.EntityRef != "" {
		where("entity_ref = $%d", filter.EntityRef)
	}
	if filter.Action != "" {
		where("action = $%d", string(filter.Action))
	}
	if filter.From != nil {
		where("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		where("occurred_at < $%d", *filter.To)
	}
	if filter.AfterSeq > 0 {
		where("seq > $%d", filter.AfterSeq)
	}

	query := `
		SELECT seq, occurred_at, actor_id, actor_role, action, entity_type, entity_ref, merchant_id, snapshot
		FROM audit_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY seq LIMIT $%d", len(args))

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.AuditEntry{}
	for rows.Next() {
		var (
			entry    models.AuditEntry
			snapshot []byte
		)
		if err := rows.Scan(
			&entry.Seq, &entry.OccurredAt, &entry.ActorID, &entry.ActorRole, &entry.Action,
			&entry.EntityType, &entry.EntityRef, &entry.MerchantID, &snapshot,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.Snapshot = snapshot
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// AppendAudit records a standalone audit entry
func (r *AuditRepo) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	return audit.Append(ctx, r.db, entry)
}
