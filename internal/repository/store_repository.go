package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

type StoreRepositoryImpl struct {
	db *sqlx.DB
}

func CreateStoreRepository(db *sqlx.DB) StoreRepository {
	return &StoreRepositoryImpl{db: db}
}

func (r *StoreRepositoryImpl) AddStore(ctx context.Context, data domain.Store) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO stores(id, name, user_id, created_at, updated_at) VALUES (:id, :name, :user_id, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddStore")
	}

	return nil
}

func (r *StoreRepositoryImpl) GetStoreByIDAndUserID(ctx context.Context, id string, userID string) (data domain.Store, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM stores WHERE id = $1 AND user_id = $2", id, userID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetStoreByIDAndUserID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *StoreRepositoryImpl) GetStoresByUserID(ctx context.Context, userID string) (data []domain.Store, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM stores WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetStoresByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *StoreRepositoryImpl) UpdateStore(ctx context.Context, data domain.Store) (rowsAffected int64, err error) {
	res, err := r.db.NamedExecContext(ctx, "UPDATE stores SET name=:name, updated_at=:updated_at WHERE id=:id AND user_id=:user_id", data)
	if err != nil {
		return 0, classifyWriteError(err, "UpdateStore")
	}

	rowsAffected, err = res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateStore").Msg("")
		return 0, errs.ErrInternalServer
	}

	return rowsAffected, nil
}

func (r *StoreRepositoryImpl) DeleteStore(ctx context.Context, id string, userID string) (rowsAffected int64, err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM stores WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, classifyDeleteError(err, "DeleteStore")
	}

	rowsAffected, err = res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteStore").Msg("")
		return 0, errs.ErrInternalServer
	}

	return rowsAffected, nil
}
