package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Timothyfranx/ultimatebosu/internal/domain"
	"github.com/Timothyfranx/ultimatebosu/internal/storage"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) GetByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	query := `
		SELECT id, external_id, display_name, claimed_handle, resource_ref, created_at, updated_at
		FROM accounts
		WHERE external_id = ?`

	var acc domain.Account
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &acc, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *AccountStore) Upsert(ctx context.Context, acc *domain.Account) (int64, error) {
	query := `
		INSERT INTO accounts (external_id, display_name, claimed_handle, resource_ref)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (external_id) DO UPDATE SET
			display_name = excluded.display_name,
			claimed_handle = excluded.claimed_handle,
			resource_ref = excluded.resource_ref,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query,
		acc.ExternalID,
		acc.DisplayName,
		acc.ClaimedHandle,
		acc.ResourceRef,
	); err != nil {
		return 0, err
	}

	var id int64
	err := sqlx.GetContext(ctx, storage.GetExecutor(ctx, s.db), &id,
		`SELECT id FROM accounts WHERE external_id = ?`, acc.ExternalID)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *AccountStore) SetResourceRef(ctx context.Context, externalID, resourceID int64) error {
	query := `
		UPDATE accounts
		SET resource_ref = ?, updated_at = CURRENT_TIMESTAMP
		WHERE external_id = ?`

	res, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query, resourceID, externalID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
