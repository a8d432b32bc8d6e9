// Package audit appends entries to the append-only audit trail.
//
// Append takes the caller's query executor so that the entry commits or rolls
// back together with the state change it records. The trail has no update or
// delete path.
package audit

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/chadpay/internal/pkg/models"
)

const insertEntryQuery = `
	INSERT INTO audit_entries (
		occurred_at, actor_id, actor_role, action, entity_type, entity_ref, merchant_id, snapshot
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)
	RETURNING seq`

// Append writes entry and stores the assigned sequence number on it
func Append(ctx context.Context, q sqlx.QueryerContext, entry *models.AuditEntry) error {
	snapshot := string(entry.Snapshot)
	if snapshot == "" {
		snapshot = "{}"
	}

	row := q.QueryRowxContext(ctx, insertEntryQuery,
		entry.OccurredAt,
		entry.ActorID,
		string(entry.ActorRole),
		string(entry.Action),
		entry.EntityType,
		entry.EntityRef,
		entry.MerchantID,
		snapshot,
	)
	if err := row.Scan(&entry.Seq); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
