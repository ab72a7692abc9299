package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// ext returns the transaction when one is active, the plain handle otherwise.
func (r *ProductRepositoryImpl) ext() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.ext(), "INSERT INTO products(id, store_id, category_id, color_id, size_id, name, price, is_featured, is_archived, created_at, updated_at) VALUES (:id, :store_id, :category_id, :color_id, :size_id, :name, :price, :is_featured, :is_archived, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddProduct")
	}

	return nil
}

func (r *ProductRepositoryImpl) AddProductImages(ctx context.Context, data []domain.Image) (err error) {
	if len(data) == 0 {
		return nil
	}

	_, err = sqlx.NamedExecContext(ctx, r.ext(), "INSERT INTO product_images(id, product_id, url, created_at, updated_at) VALUES (:id, :product_id, :url, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddProductImages")
	}

	return nil
}

func (r *ProductRepositoryImpl) GetProductsByStoreID(ctx context.Context, storeID string, filter dto.ProductFilter) (data []domain.Product, err error) {
	query := "SELECT * FROM products WHERE store_id = :store_id"

	args := map[string]interface{}{
		"store_id": storeID,
	}

	if filter.CategoryID != "" {
		query += " AND category_id = :category_id"
		args["category_id"] = filter.CategoryID
	}

	if filter.ColorID != "" {
		query += " AND color_id = :color_id"
		args["color_id"] = filter.ColorID
	}

	if filter.SizeID != "" {
		query += " AND size_id = :size_id"
		args["size_id"] = filter.SizeID
	}

	if filter.IsFeatured {
		query += " AND is_featured = TRUE AND is_archived = FALSE"
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
		log.Error().Err(err).Str("component", "GetProductsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByStoreID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetProductImages(ctx context.Context, productID string) (data []domain.Image, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, "SELECT * FROM product_images WHERE product_id = $1 ORDER BY created_at", productID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductImages").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.ext(), "UPDATE products SET name=:name, price=:price, category_id=:category_id, color_id=:color_id, size_id=:size_id, is_featured=:is_featured, is_archived=:is_archived, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		return classifyWriteError(err, "UpdateProduct")
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProductImages(ctx context.Context, productID string) (err error) {
	_, err = r.ext().ExecContext(ctx, "DELETE FROM product_images WHERE product_id = $1", productID)
	if err != nil {
		return classifyDeleteError(err, "DeleteProductImages")
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	_, err = r.ext().ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteProduct")
	}

	return nil
}

// HandleTrx runs fn inside one transaction. The named return matters: the
// deferred commit writes its error into err, so a failed commit reaches the
// caller instead of being reported as success.
func (r *ProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "HandleTrx").Msg("")
		return errs.ErrInternalServer
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else if commitErr := tx.Commit(); commitErr != nil {
			log.Error().Err(commitErr).Str("component", "HandleTrx").Msg("")
			err = errs.ErrInternalServer
		}
	}()

	trxRepo := &ProductRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}
