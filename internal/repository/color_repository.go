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

type ColorRepositoryImpl struct {
	db *sqlx.DB
}

func CreateColorRepository(db *sqlx.DB) ColorRepository {
	return &ColorRepositoryImpl{db: db}
}

func (r *ColorRepositoryImpl) AddColor(ctx context.Context, data domain.Color) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO colors(id, store_id, name, value, created_at, updated_at) VALUES (:id, :store_id, :name, :value, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddColor")
	}

	return nil
}

func (r *ColorRepositoryImpl) GetColorsByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Color, err error) {
	query := "SELECT * FROM colors WHERE store_id = :store_id"

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
		log.Error().Err(err).Str("component", "GetColorsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetColorsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ColorRepositoryImpl) GetColorByID(ctx context.Context, id string) (data domain.Color, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM colors WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetColorByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ColorRepositoryImpl) UpdateColor(ctx context.Context, data domain.Color) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE colors SET name=:name, value=:value, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		return classifyWriteError(err, "UpdateColor")
	}

	return nil
}

func (r *ColorRepositoryImpl) DeleteColor(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM colors WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteColor")
	}

	return nil
}
