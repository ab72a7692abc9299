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

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO categories(id, store_id, billboard_id, name, created_at, updated_at) VALUES (:id, :store_id, :billboard_id, :name, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddCategory")
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetCategoriesByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Category, err error) {
	query := "SELECT * FROM categories WHERE store_id = :store_id"

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
		log.Error().Err(err).Str("component", "GetCategoriesByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategoriesByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM categories WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE categories SET name=:name, billboard_id=:billboard_id, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		return classifyWriteError(err, "UpdateCategory")
	}

	return nil
}

func (r *CategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteCategory")
	}

	return nil
}
