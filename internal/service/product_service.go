package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/infrastructure/media"
	"github.com/Delvoid/ecom-admin/internal/repository"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	storeRepo     repository.StoreRepository
	media         MediaDeleter
	cleanupRepo   repository.MediaCleanupRepository
	kafkaProducer *kafka.Conn
}

func CreateProductService(repo repository.ProductRepository, storeRepo repository.StoreRepository, mediaDeleter MediaDeleter, cleanupRepo repository.MediaCleanupRepository, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{
		repo:          repo,
		storeRepo:     storeRepo,
		media:         mediaDeleter,
		cleanupRepo:   cleanupRepo,
		kafkaProducer: kafkaProducer,
	}
}

func productResponse(data domain.Product, images []domain.Image) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:         data.ID,
		StoreID:    data.StoreID,
		CategoryID: data.CategoryID,
		ColorID:    data.ColorID,
		SizeID:     data.SizeID,
		Name:       data.Name,
		Price:      data.Price,
		IsFeatured: data.IsFeatured,
		IsArchived: data.IsArchived,
		Images:     make([]dto.ProductImageResponse, 0, len(images)),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	for _, image := range images {
		resp.Images = append(resp.Images, dto.ProductImageResponse{ID: image.ID, URL: image.URL})
	}

	return resp
}

func buildImages(productID string, reqImages []dto.ProductImageRequest, timestamp int64) []domain.Image {
	images := make([]domain.Image, 0, len(reqImages))
	for _, image := range reqImages {
		images = append(images, domain.Image{
			ID:        ulid.Make().String(),
			ProductID: productID,
			URL:       image.URL,
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		})
	}
	return images
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, userID string, storeID string, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	product := domain.Product{
		ID:         ulid.Make().String(),
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		ColorID:    req.ColorID,
		SizeID:     req.SizeID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		CreatedAt:  timestamp,
		UpdatedAt:  timestamp,
	}
	images := buildImages(product.ID, req.Images, timestamp)

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		if err := repo.AddProduct(ctx, product); err != nil {
			return err
		}
		return repo.AddProductImages(ctx, images)
	})
	if err != nil {
		return
	}

	resp = productResponse(product, images)
	publishEvent(s.kafkaProducer, "product_created", resp)

	return resp, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, storeID string, filter dto.ProductFilter) (resp []dto.ProductResponse, err error) {
	products, err := s.repo.GetProductsByStoreID(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		images, err := s.repo.GetProductImages(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, productResponse(product, images))
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, productID string) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if product.ID == "" {
		return resp, errs.ErrNotFound
	}

	images, err := s.repo.GetProductImages(ctx, productID)
	if err != nil {
		return
	}

	return productResponse(product, images), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, userID string, storeID string, productID string, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return resp, errs.ErrNotFound
	}

	oldImages, err := s.repo.GetProductImages(ctx, productID)
	if err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	product := domain.Product{
		ID:         productID,
		StoreID:    existing.StoreID,
		CategoryID: req.CategoryID,
		ColorID:    req.ColorID,
		SizeID:     req.SizeID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  timestamp,
	}
	images := buildImages(productID, req.Images, timestamp)

	// The image set is replaced wholesale: all rows go, the new set comes in,
	// inside one transaction with the product row update.
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		if err := repo.UpdateProduct(ctx, product); err != nil {
			return err
		}
		if err := repo.DeleteProductImages(ctx, productID); err != nil {
			return err
		}
		return repo.AddProductImages(ctx, images)
	})
	if err != nil {
		return
	}

	removeAssetsBestEffort(ctx, s.media, s.cleanupRepo, staleAssetIDs(oldImages, images))

	resp = productResponse(product, images)
	publishEvent(s.kafkaProducer, "product_updated", resp)

	return resp, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, userID string, storeID string, productID string) (err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return errs.ErrNotFound
	}

	images, err := s.repo.GetProductImages(ctx, productID)
	if err != nil {
		return
	}

	assetIDs := make([]string, 0, len(images))
	for _, image := range images {
		assetIDs = append(assetIDs, media.ExtractAssetID(image.URL))
	}
	removeAssetsBestEffort(ctx, s.media, s.cleanupRepo, assetIDs)

	// Image rows go with the product via the FK cascade.
	if err = s.repo.DeleteProduct(ctx, productID); err != nil {
		return
	}

	publishEvent(s.kafkaProducer, "product_deleted", productResponse(existing, images))

	return nil
}

// staleAssetIDs returns the asset ids referenced by the old image set but not
// by the new one; those are the only assets the media host should lose.
func staleAssetIDs(oldImages []domain.Image, newImages []domain.Image) []string {
	kept := make(map[string]struct{}, len(newImages))
	for _, image := range newImages {
		kept[media.ExtractAssetID(image.URL)] = struct{}{}
	}

	var stale []string
	seen := make(map[string]struct{}, len(oldImages))
	for _, image := range oldImages {
		assetID := media.ExtractAssetID(image.URL)
		if _, ok := kept[assetID]; ok {
			continue
		}
		if _, ok := seen[assetID]; ok {
			continue
		}
		seen[assetID] = struct{}{}
		stale = append(stale, assetID)
	}

	return stale
}
