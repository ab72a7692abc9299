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

type ColorServiceImpl struct {
	repo          repository.ColorRepository
	storeRepo     repository.StoreRepository
	kafkaProducer *kafka.Conn
}

func CreateColorService(repo repository.ColorRepository, storeRepo repository.StoreRepository, kafkaProducer *kafka.Conn) ColorService {
	return &ColorServiceImpl{repo: repo, storeRepo: storeRepo, kafkaProducer: kafkaProducer}
}

func colorResponse(data domain.Color) dto.ColorResponse {
	return dto.ColorResponse{
		ID:        data.ID,
		StoreID:   data.StoreID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func (s *ColorServiceImpl) AddColor(ctx context.Context, userID string, storeID string, req dto.ColorRequest) (resp dto.ColorResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	timestamp := time.Now().UnixMilli()
	color := domain.Color{
		ID:        ulid.Make().String(),
		StoreID:   storeID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}

	if err = s.repo.AddColor(ctx, color); err != nil {
		return
	}

	resp = colorResponse(color)
	publishEvent(s.kafkaProducer, "color_created", resp)

	return resp, nil
}

func (s *ColorServiceImpl) GetColors(ctx context.Context, storeID string, filter pkgdto.Filter) (resp []dto.ColorResponse, err error) {
	colors, err := s.repo.GetColorsByStoreID(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ColorResponse, 0, len(colors))
	for _, color := range colors {
		resp = append(resp, colorResponse(color))
	}

	return resp, nil
}

func (s *ColorServiceImpl) GetColor(ctx context.Context, colorID string) (resp dto.ColorResponse, err error) {
	color, err := s.repo.GetColorByID(ctx, colorID)
	if err != nil {
		return
	}

	if color.ID == "" {
		return resp, errs.ErrNotFound
	}

	return colorResponse(color), nil
}

func (s *ColorServiceImpl) UpdateColor(ctx context.Context, userID string, storeID string, colorID string, req dto.ColorRequest) (resp dto.ColorResponse, err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetColorByID(ctx, colorID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return resp, errs.ErrNotFound
	}

	color := domain.Color{
		ID:        colorID,
		StoreID:   existing.StoreID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UnixMilli(),
	}

	if err = s.repo.UpdateColor(ctx, color); err != nil {
		return
	}

	resp = colorResponse(color)
	publishEvent(s.kafkaProducer, "color_updated", resp)

	return resp, nil
}

func (s *ColorServiceImpl) DeleteColor(ctx context.Context, userID string, storeID string, colorID string) (err error) {
	if err = ensureStoreOwnership(ctx, s.storeRepo, storeID, userID); err != nil {
		return
	}

	existing, err := s.repo.GetColorByID(ctx, colorID)
	if err != nil {
		return
	}

	if existing.ID == "" {
		return errs.ErrNotFound
	}

	if err = s.repo.DeleteColor(ctx, colorID); err != nil {
		return
	}

	publishEvent(s.kafkaProducer, "color_deleted", colorResponse(existing))

	return nil
}
