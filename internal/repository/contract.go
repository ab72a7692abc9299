package repository

import (
	"context"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type StoreRepository interface {
	AddStore(ctx context.Context, data domain.Store) (err error)
	GetStoreByIDAndUserID(ctx context.Context, id string, userID string) (data domain.Store, err error)
	GetStoresByUserID(ctx context.Context, userID string) (data []domain.Store, err error)
	UpdateStore(ctx context.Context, data domain.Store) (rowsAffected int64, err error)
	DeleteStore(ctx context.Context, id string, userID string) (rowsAffected int64, err error)
}

type BillboardRepository interface {
	AddBillboard(ctx context.Context, data domain.Billboard) (err error)
	GetBillboardsByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Billboard, err error)
	GetBillboardByID(ctx context.Context, id string) (data domain.Billboard, err error)
	UpdateBillboard(ctx context.Context, data domain.Billboard) (err error)
	DeleteBillboard(ctx context.Context, id string) (err error)
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (err error)
	GetCategoriesByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type ColorRepository interface {
	AddColor(ctx context.Context, data domain.Color) (err error)
	GetColorsByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Color, err error)
	GetColorByID(ctx context.Context, id string) (data domain.Color, err error)
	UpdateColor(ctx context.Context, data domain.Color) (err error)
	DeleteColor(ctx context.Context, id string) (err error)
}

type SizeRepository interface {
	AddSize(ctx context.Context, data domain.Size) (err error)
	GetSizesByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) (data []domain.Size, err error)
	GetSizeByID(ctx context.Context, id string) (data domain.Size, err error)
	UpdateSize(ctx context.Context, data domain.Size) (err error)
	DeleteSize(ctx context.Context, id string) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	AddProductImages(ctx context.Context, data []domain.Image) (err error)
	GetProductsByStoreID(ctx context.Context, storeID string, filter dto.ProductFilter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	GetProductImages(ctx context.Context, productID string) (data []domain.Image, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProductImages(ctx context.Context, productID string) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error
}

type MediaCleanupRepository interface {
	AddCleanupTasks(ctx context.Context, data []domain.MediaCleanupTask) (err error)
	GetPendingTasks(ctx context.Context, limit int) (data []domain.MediaCleanupTask, err error)
	DeleteTask(ctx context.Context, id string) (err error)
	IncrementAttempts(ctx context.Context, id string) (err error)
	DeleteExhaustedTasks(ctx context.Context, maxAttempts int) (rowsAffected int64, err error)
}
