package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
)

// AuditRepository реализует domain.AuditRepository. Записи только добавляются.
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository создает новый AuditRepository
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append добавляет запись в журнал действий
func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("repository: failed to encode audit metadata: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO audit_logs (id, actor_id, action, entity_type, entity_id, before_state, after_state, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		entry.ID, entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, entry.Before, entry.After, raw,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to append audit %q for %s %s: %w", entry.Action, entry.EntityType, entry.EntityID, classify(err))
	}

	return nil
}
