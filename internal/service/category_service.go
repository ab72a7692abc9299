package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/repository"
	"github.com/Delvoid/ecom-admin/pkg/errs"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type CategoryServiceImpl struct {
	repo          repository.CategoryRepository
	storeRepo     repository.StoreRepository
	kafkaProducer *kafka.Conn
}

func CreateCategoryService(repo repository.CategoryRepository, storeRepo repository.StoreRepository, kafkaProducer *kafka.Conn) CategoryService {
	return &CategoryServiceImpl{repo: repo, storeRepo: storeRepo, kafkaProducer: kafkaProducer}
}

func categoryResponse(data domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          data.ID,
		StoreID:     data.StoreID,
		BillboardID: data.BillboardID,
		Name:        data.Name,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, userID string, storeID string, req dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	category := domain.Category{
		ID:          ulid.Make().String(),
		StoreID:     storeID,
		BillboardID: req.BillboardID,
		Name:        req.Name,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	if err = s.repo.AddCategory(ctx, category); err != nil {
		return
	}

	resp = categoryResponse(category)
	publishEvent(s.kafkaProducer, "category_created", resp)

	return resp, nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.CategoryResponse, err error) {
	categories, err := s.repo.GetCategoriesByStoreID(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, categoryResponse(category))
	}

	return resp, nil
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, categoryID string) (resp dto.CategoryResponse, err error) {
	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	if category.ID == "" {
		return resp, errs.ErrNotFound
	}

	return categoryResponse(category), nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, userID string, storeID string, categoryID string, req dto.CategoryRequest) (resp dto.CategoryResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return resp, errs.ErrNotFound
	}

	category := domain.Category{
		ID:          categoryID,
		StoreID:     existing.StoreID,
		BillboardID: req.BillboardID,
		Name:        req.Name,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UnixMilli(),
	}

	if err = s.repo.UpdateCategory(ctx, category); err != nil {
		return
	}

	resp = categoryResponse(category)
	publishEvent(s.kafkaProducer, "category_updated", resp)

	return resp, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, userID string, storeID string, categoryID string) (err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return errs.ErrNotFound
	}

	if err = s.repo.DeleteCategory(ctx, categoryID); err != nil {
		return
	}

	publishEvent(s.kafkaProducer, "category_deleted", categoryResponse(existing))

	return nil
}
