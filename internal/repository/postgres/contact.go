package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/marketplace-escrow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ContactRepository реализует domain.ContactRepository.
// Каналы считаются пригодными только после подтверждения.
type ContactRepository struct {
	db DBTX
}

// NewContactRepository создает новый ContactRepository
func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

// GetContacts получает подтвержденные email и телефон пользователя
func (r *ContactRepository) GetContacts(ctx context.Context, userID uuid.UUID) (*domain.Contacts, error) {
	contacts := &domain.Contacts{}

	err := r.db.QueryRow(ctx,
		`SELECT user_id, email, phone
		 FROM user_contacts
		 WHERE user_id = $1 AND email_verified AND phone_verified`,
		userID,
	).Scan(&contacts.UserID, &contacts.Email, &contacts.Phone)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactsNotFound
		}
		return nil, fmt.Errorf("repository: failed to get contacts for user %s: %w", userID, classify(err))
	}

	return contacts, nil
}
