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

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type BillboardServiceImpl struct {
	repo          repository.BillboardRepository
	storeRepo     repository.StoreRepository
	media         MediaDeleter
	cleanupRepo   repository.MediaCleanupRepository
	kafkaProducer *kafka.Conn
}

func CreateBillboardService(repo repository.BillboardRepository, storeRepo repository.StoreRepository, mediaDeleter MediaDeleter, cleanupRepo repository.MediaCleanupRepository, kafkaProducer *kafka.Conn) BillboardService {
	return &BillboardServiceImpl{
		repo:          repo,
		storeRepo:     storeRepo,
		media:         mediaDeleter,
		cleanupRepo:   cleanupRepo,
		kafkaProducer: kafkaProducer,
	}
}

func billboardResponse(data domain.Billboard) dto.BillboardResponse {
	return dto.BillboardResponse{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Label:     data.Label,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func (s *BillboardServiceImpl) AddBillboard(ctx context.Context, userID string, storeID string, req dto.BillboardRequest) (resp dto.BillboardResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	billboard := domain.Billboard{
		ID:        ulid.Make().String(),
		StoreID:   storeID,
		Label:     req.Label,
		ImageURL:  req.ImageURL,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}

	if err = s.repo.AddBillboard(ctx, billboard); err != nil {
		return
	}

	resp = billboardResponse(billboard)
	publishEvent(s.kafkaProducer, "billboard_created", resp)

	return resp, nil
}

func (s *BillboardServiceImpl) GetBillboards(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.BillboardResponse, err error) {
	billboards, err := s.repo.GetBillboardsByStoreID(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.BillboardResponse, 0, len(billboards))
	for _, billboard := range billboards {
		resp = append(resp, billboardResponse(billboard))
	}

	return resp, nil
}

func (s *BillboardServiceImpl) GetBillboard(ctx context.Context, billboardID string) (resp dto.BillboardResponse, err error) {
	billboard, err := s.repo.GetBillboardByID(ctx, billboardID)
	if err != nil {
		return
	}

	if billboard.ID == "" {
		return resp, errs.ErrNotFound
	}

	return billboardResponse(billboard), nil
}

func (s *BillboardServiceImpl) UpdateBillboard(ctx context.Context, userID string, storeID string, billboardID string, req dto.BillboardRequest) (resp dto.BillboardResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetBillboardByID(ctx, billboardID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return resp, errs.ErrNotFound
	}

	billboard := domain.Billboard{
		ID:        billboardID,
		StoreID:   existing.StoreID,
		Label:     req.Label,
		ImageURL:  req.ImageURL,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UnixMilli(),
	}

	if err = s.repo.UpdateBillboard(ctx, billboard); err != nil {
		return
	}

	// The replaced asset is only removed once the row update has gone
	// through; the media host is never the reason a write fails.
	if existing.ImageURL != "" && existing.ImageURL != req.ImageURL {
		removeAssetsBestEffort(ctx, s.media, s.cleanupRepo, []string{media.ExtractAssetID(existing.ImageURL)})
	}

	resp = billboardResponse(billboard)
	publishEvent(s.kafkaProducer, "billboard_updated", resp)

	return resp, nil
}

func (s *BillboardServiceImpl) DeleteBillboard(ctx context.Context, userID string, storeID string, billboardID string) (err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetBillboardByID(ctx, billboardID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return errs.ErrNotFound
	}

	// Billboard deletion leaves its media asset in place; only product
	// deletion reconciles assets.
	if err = s.repo.DeleteBillboard(ctx, billboardID); err != nil {
		return
	}

	publishEvent(s.kafkaProducer, "billboard_deleted", billboardResponse(existing))

	return nil
}
