package service

import (
	"context"

	"github.com/Delvoid/ecom-admin/internal/dto"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

// MediaDeleter is the media-host collaborator: delete-by-asset-id, nothing
// more.
type MediaDeleter interface {
	DeleteAssets(ctx context.Context, publicIDs []string) error
}

type StoreService interface {
	AddStore(ctx context.Context, userID string, req dto.StoreRequest) (resp dto.StoreResponse, err error)
	GetStores(ctx context.Context, userID string) (resp []dto.StoreResponse, err error)
	GetStore(ctx context.Context, userID string, storeID string) (resp dto.StoreResponse, err error)
	UpdateStore(ctx context.Context, userID string, storeID string, req dto.StoreRequest) (resp dto.StoreResponse, err error)
	DeleteStore(ctx context.Context, userID string, storeID string) (err error)
}

type BillboardService interface {
	AddBillboard(ctx context.Context, userID string, storeID string, req dto.BillboardRequest) (resp dto.BillboardResponse, err error)
	GetBillboards(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.BillboardResponse, err error)
	GetBillboard(ctx context.Context, billboardID string) (resp dto.BillboardResponse, err error)
	UpdateBillboard(ctx context.Context, userID string, storeID string, billboardID string, req dto.BillboardRequest) (resp dto.BillboardResponse, err error)
	DeleteBillboard(ctx context.Context, userID string, storeID string, billboardID string) (err error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, userID string, storeID string, req dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	GetCategories(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.CategoryResponse, err error)
	GetCategory(ctx context.Context, categoryID string) (resp dto.CategoryResponse, err error)
	UpdateCategory(ctx context.Context, userID string, storeID string, categoryID string, req dto.CategoryRequest) (resp dto.CategoryResponse, err error)
	DeleteCategory(ctx context.Context, userID string, storeID string, categoryID string) (err error)
}

type ColorService interface {
	AddColor(ctx context.Context, userID string, storeID string, req dto.ColorRequest) (resp dto.ColorResponse, err error)
	GetColors(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.ColorResponse, err error)
	GetColor(ctx context.Context, colorID string) (resp dto.ColorResponse, err error)
	UpdateColor(ctx context.Context, userID string, storeID string, colorID string, req dto.ColorRequest) (resp dto.ColorResponse, err error)
	DeleteColor(ctx context.Context, userID string, storeID string, colorID string) (err error)
}

type SizeService interface {
	AddSize(ctx context.Context, userID string, storeID string, req dto.SizeRequest) (resp dto.SizeResponse, err error)
	GetSizes(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.SizeResponse, err error)
	GetSize(ctx context.Context, sizeID string) (resp dto.SizeResponse, err error)
	UpdateSize(ctx context.Context, userID string, storeID string, sizeID string, req dto.SizeRequest) (resp dto.SizeResponse, err error)
	DeleteSize(ctx context.Context, userID string, storeID string, sizeID string) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, userID string, storeID string, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, storeID string, filter dto.ProductFilter) (resp []dto.ProductResponse, err error)
	GetProduct(ctx context.Context, productID string) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, userID string, storeID string, productID string, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, userID string, storeID string, productID string) (err error)
}

type MediaCleanupService interface {
	ProcessPendingCleanups()
}
