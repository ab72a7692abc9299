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

type BillboardRepositoryImpl struct {
	db *sqlx.DB
}

func CreateBillboardRepository(db *sqlx.DB) BillboardRepository {
	return &BillboardRepositoryImpl{db: db}
}

func (r *BillboardRepositoryImpl) AddBillboard(ctx context.Context, data domain.Billboard) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO billboards(id, store_id, label, image_url, created_at, updated_at) VALUES (:id, :store_id, :label, :image_url, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddBillboard")
	}

	return nil
}

func (r *BillboardRepositoryImpl) GetBillboardsByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Billboard, err error) {
	query := "SELECT * FROM billboards WHERE store_id = :store_id"

	args := map[string]interface{}{
		"store_id": storeID,
	}

	if filter.Q != "" {
		query += " AND label ILIKE :q"
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
		log.Error().Err(err).Str("component", "GetBillboardsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBillboardsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *BillboardRepositoryImpl) GetBillboardByID(ctx context.Context, id string) (data domain.Billboard, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM billboards WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetBillboardByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *BillboardRepositoryImpl) UpdateBillboard(ctx context.Context, data domain.Billboard) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE billboards SET label=:label, image_url=:image_url, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		return classifyWriteError(err, "UpdateBillboard")
	}

	return nil
}

func (r *BillboardRepositoryImpl) DeleteBillboard(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM billboards WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteBillboard")
	}

	return nil
}
