package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/pkg/errs"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type SizeRepositoryImpl struct {
	db *sqlx.DB
}

func CreateSizeRepository(db *sqlx.DB) SizeRepository {
	return &SizeRepositoryImpl{db: db}
}

func (r *SizeRepositoryImpl) AddSize(ctx context.Context, data domain.Size) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO sizes(id, store_id, name, value, created_at, updated_at) VALUES (:id, :store_id, :name, :value, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddSize")
	}

	return nil
}

func (r *SizeRepositoryImpl) GetSizesByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Size, err error) {
	query := "SELECT * FROM sizes WHERE store_id = :store_id"

	args := map[string]interface{}{
		"store_id": storeID,
	}

	if filter.Q != "" {
		query += " AND name ILIKE :q"
		args["q"] = "%" + filter.Q + "%"
	}

	query += " ORDER BY created_at"

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSizesByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSizesByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *SizeRepositoryImpl) GetSizeByID(ctx context.Context, id string) (data domain.Size, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM sizes WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetSizeByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *SizeRepositoryImpl) UpdateSize(ctx context.Context, data domain.Size) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE sizes SET name=:name, value=:value, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		return classifyWriteError(err, "UpdateSize")
	}

	return nil
}

func (r *SizeRepositoryImpl) DeleteSize(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM sizes WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteSize")
	}

	return nil
}
