package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Delvoid/ecom-admin/config"
	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

func TestAddStoreSetsOwner(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := CreateStoreService(repo, &config.Config{}, nil)

	resp, err := svc.AddStore(context.Background(), "user-1", dto.StoreRequest{Name: "sneaker shop"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "sneaker shop", resp.Name)

	stored := repo.stores[resp.ID]
	assert.Equal(t, "user-1", stored.UserID)
}

func TestStoreResponseCarriesAPIURL(t *testing.T) {
	repo := newFakeStoreRepo()
	svc := CreateStoreService(repo, &config.Config{PublicAPIURL: "https://api.example.com/"}, nil)

	resp, err := svc.AddStore(context.Background(), "user-1", dto.StoreRequest{Name: "sneaker shop"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api/v1/"+resp.ID, resp.APIURL)
}

func TestGetStoreDeniedForNonOwner(t *testing.T) {
	repo := newFakeStoreRepo(domain.Store{ID: "store-1", Name: "shop", UserID: "owner"})
	svc := CreateStoreService(repo, &config.Config{}, nil)

	_, err := svc.GetStore(context.Background(), "someone-else", "store-1")
	assert.ErrorIs(t, err, errs.ErrNoStoreAccess)

	resp, err := svc.GetStore(context.Background(), "owner", "store-1")
	require.NoError(t, err)
	assert.Equal(t, "store-1", resp.ID)
}

func TestUpdateStoreZeroRowsMeansNoAccess(t *testing.T) {
	repo := newFakeStoreRepo(domain.Store{ID: "store-1", Name: "shop", UserID: "owner"})
	svc := CreateStoreService(repo, &config.Config{}, nil)

	_, err := svc.UpdateStore(context.Background(), "someone-else", "store-1", dto.StoreRequest{Name: "renamed"})
	assert.ErrorIs(t, err, errs.ErrNoStoreAccess)
	assert.Equal(t, "shop", repo.stores["store-1"].Name)

	resp, err := svc.UpdateStore(context.Background(), "owner", "store-1", dto.StoreRequest{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", resp.Name)
}

func TestDeleteStoreZeroRowsMeansNoAccess(t *testing.T) {
	repo := newFakeStoreRepo(domain.Store{ID: "store-1", Name: "shop", UserID: "owner"})
	svc := CreateStoreService(repo, &config.Config{}, nil)

	err := svc.DeleteStore(context.Background(), "someone-else", "store-1")
	assert.ErrorIs(t, err, errs.ErrNoStoreAccess)
	assert.Contains(t, repo.stores, "store-1")

	err = svc.DeleteStore(context.Background(), "owner", "store-1")
	require.NoError(t, err)
	assert.NotContains(t, repo.stores, "store-1")
}
