package postgres

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
		WHERE external_id = $1`

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
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			claimed_handle = EXCLUDED.claimed_handle,
			resource_ref = EXCLUDED.resource_ref,
			updated_at = now()
		RETURNING id`

	var id int64
	err := storage.GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		acc.ExternalID,
		acc.DisplayName,
		acc.ClaimedHandle,
		acc.ResourceRef,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *AccountStore) SetResourceRef(ctx context.Context, externalID, resourceID int64) error {
	query := `
		UPDATE accounts
		SET resource_ref = $2, updated_at = now()
		WHERE external_id = $1`

	res, err := storage.GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, resourceID)
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
