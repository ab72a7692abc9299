package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"

	"github.com/Delvoid/ecom-admin/config"
	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/repository"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

type StoreServiceImpl struct {
	repo          repository.StoreRepository
	config        *config.Config
	kafkaProducer *kafka.Conn
}

func CreateStoreService(repo repository.StoreRepository, config *config.Config, kafkaProducer *kafka.Conn) StoreService {
	return &StoreServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer}
}

func (s *StoreServiceImpl) storeResponse(data domain.Store) dto.StoreResponse {
	resp := dto.StoreResponse{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if s.config.PublicAPIURL != "" {
		resp.APIURL = fmt.Sprintf("%s/api/v1/%s", strings.TrimRight(s.config.PublicAPIURL, "/"), data.ID)
	}

	return resp
}

func (s *StoreServiceImpl) AddStore(ctx context.Context, userID string, req dto.StoreRequest) (resp dto.StoreResponse, err error) {
	timestamp := time.Now().UnixMilli()
	store := domain.Store{
		ID:        ulid.Make().String(),
		Name:      req.Name,
		UserID:    userID,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}

	if err = s.repo.AddStore(ctx, store); err != nil {
		return
	}

	resp = s.storeResponse(store)
	publishEvent(s.kafkaProducer, "store_created", resp)

	return resp, nil
}

func (s *StoreServiceImpl) GetStores(ctx context.Context, userID string) (resp []dto.StoreResponse, err error) {
	stores, err := s.repo.GetStoresByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.StoreResponse, 0, len(stores))
	for _, store := range stores {
		resp = append(resp, s.storeResponse(store))
	}

	return resp, nil
}

func (s *StoreServiceImpl) GetStore(ctx context.Context, userID string, storeID string) (resp dto.StoreResponse, err error) {
	store, err := s.repo.GetStoreByIDAndUserID(ctx, storeID, userID)
	if err != nil {
		return
	}

	if store.ID == "" {
		return resp, errs.ErrNoStoreAccess
	}

	return s.storeResponse(store), nil
}

func (s *StoreServiceImpl) UpdateStore(ctx context.Context, userID string, storeID string, req dto.StoreRequest) (resp dto.StoreResponse, err error) {
	store := domain.Store{
		ID:        storeID,
		Name:      req.Name,
		UserID:    userID,
		UpdatedAt: time.Now().UnixMilli(),
	}

	rowsAffected, err := s.repo.UpdateStore(ctx, store)
	if err != nil {
		return
	}

	// The conditional write doubles as the ownership check: zero rows means
	// the store is missing or owned by someone else.
	if rowsAffected == 0 {
		return resp, errs.ErrNoStoreAccess
	}

	updated, err := s.repo.GetStoreByIDAndUserID(ctx, storeID, userID)
	if err != nil {
		return
	}

	resp = s.storeResponse(updated)
	publishEvent(s.kafkaProducer, "store_updated", resp)

	return resp, nil
}

func (s *StoreServiceImpl) DeleteStore(ctx context.Context, userID string, storeID string) (err error) {
	rowsAffected, err := s.repo.DeleteStore(ctx, storeID, userID)
	if err != nil {
		return
	}

	if rowsAffected == 0 {
		return errs.ErrNoStoreAccess
	}

	publishEvent(s.kafkaProducer, "store_deleted", dto.StoreResponse{ID: storeID, UserID: userID})

	return nil
}
