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

type SizeServiceImpl struct {
	repo          repository.SizeRepository
	storeRepo     repository.StoreRepository
	kafkaProducer *kafka.Conn
}

func CreateSizeService(repo repository.SizeRepository, storeRepo repository.StoreRepository, kafkaProducer *kafka.Conn) SizeService {
	return &SizeServiceImpl{repo: repo, storeRepo: storeRepo, kafkaProducer: kafkaProducer}
}

func sizeResponse(data domain.Size) dto.SizeResponse {
	return dto.SizeResponse{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func (s *SizeServiceImpl) AddSize(ctx context.Context, userID string, storeID string, req dto.SizeRequest) (resp dto.SizeResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	size := domain.Size{
		ID:        ulid.Make().String(),
		StoreID:   storeID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}

	if err = s.repo.AddSize(ctx, size); err != nil {
		return
	}

	resp = sizeResponse(size)
	publishEvent(s.kafkaProducer, "size_created", resp)

	return resp, nil
}

func (s *SizeServiceImpl) GetSizes(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.SizeResponse, err error) {
	sizes, err := s.repo.GetSizesByStoreID(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.SizeResponse, 0, len(sizes))
	for _, size := range sizes {
		resp = append(resp, sizeResponse(size))
	}

	return resp, nil
}

func (s *SizeServiceImpl) GetSize(ctx context.Context, sizeID string) (resp dto.SizeResponse, err error) {
	size, err := s.repo.GetSizeByID(ctx, sizeID)
	if err != nil {
		return
	}

	if size.ID == "" {
		return resp, errs.ErrNotFound
	}

	return sizeResponse(size), nil
}

func (s *SizeServiceImpl) UpdateSize(ctx context.Context, userID string, storeID string, sizeID string, req dto.SizeRequest) (resp dto.SizeResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetSizeByID(ctx, sizeID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return resp, errs.ErrNotFound
	}

	size := domain.Size{
		ID:        sizeID,
		StoreID:   existing.StoreID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UnixMilli(),
	}

	if err = s.repo.UpdateSize(ctx, size); err != nil {
		return
	}

	resp = sizeResponse(size)
	publishEvent(s.kafkaProducer, "size_updated", resp)

	return resp, nil
}

func (s *SizeServiceImpl) DeleteSize(ctx context.Context, userID string, storeID string, sizeID string) (err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetSizeByID(ctx, sizeID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return errs.ErrNotFound
	}

	if err = s.repo.DeleteSize(ctx, sizeID); err != nil {
		return
	}

	publishEvent(s.kafkaProducer, "size_deleted", sizeResponse(existing))

	return nil
}
