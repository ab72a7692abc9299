package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

func ownedStoreRepo() *fakeStoreRepo {
	return newFakeStoreRepo(domain.Store{ID: "store-1", Name: "shop", UserID: "owner"})
}

func TestAddBillboardDeniedForNonOwner(t *testing.T) {
	repo := newFakeBillboardRepo()
	svc := CreateBillboardService(repo, ownedStoreRepo(), &fakeMediaDeleter{}, &fakeCleanupRepo{}, nil)

	_, err := svc.AddBillboard(context.Background(), "someone-else", "store-1", dto.BillboardRequest{
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/abc.jpg",
	})

	assert.ErrorIs(t, err, errs.ErrNoStoreAccess)
	assert.Empty(t, repo.billboards)
}

func TestUpdateBillboardMissingRow(t *testing.T) {
	repo := newFakeBillboardRepo()
	svc := CreateBillboardService(repo, ownedStoreRepo(), &fakeMediaDeleter{}, &fakeCleanupRepo{}, nil)

	_, err := svc.UpdateBillboard(context.Background(), "owner", "store-1", "missing", dto.BillboardRequest{
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/abc.jpg",
	})

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateBillboardReplacedImageIsDeleted(t *testing.T) {
	repo := newFakeBillboardRepo(domain.Billboard{
		ID:       "bb-1",
		StoreID:  "store-1",
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/old-asset.jpg",
	})
	media := &fakeMediaDeleter{}
	svc := CreateBillboardService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	resp, err := svc.UpdateBillboard(context.Background(), "owner", "store-1", "bb-1", dto.BillboardRequest{
		Label:    "autumn",
		ImageURL: "https://cdn.example.com/v1/new-asset.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "autumn", resp.Label)
	assert.Equal(t, []string{"old-asset"}, media.allDeleted())
}

func TestUpdateBillboardSameImageLeavesAsset(t *testing.T) {
	repo := newFakeBillboardRepo(domain.Billboard{
		ID:       "bb-1",
		StoreID:  "store-1",
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/asset.jpg",
	})
	media := &fakeMediaDeleter{}
	svc := CreateBillboardService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	_, err := svc.UpdateBillboard(context.Background(), "owner", "store-1", "bb-1", dto.BillboardRequest{
		Label:    "autumn",
		ImageURL: "https://cdn.example.com/v1/asset.jpg",
	})
	require.NoError(t, err)

	assert.Empty(t, media.allDeleted())
}

func TestDeleteBillboardLeavesAsset(t *testing.T) {
	repo := newFakeBillboardRepo(domain.Billboard{
		ID:       "bb-1",
		StoreID:  "store-1",
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/asset.jpg",
	})
	media := &fakeMediaDeleter{}
	svc := CreateBillboardService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	err := svc.DeleteBillboard(context.Background(), "owner", "store-1", "bb-1")
	require.NoError(t, err)

	assert.NotContains(t, repo.billboards, "bb-1")
	assert.Empty(t, media.allDeleted())
}

func TestUpdateBillboardMediaFailureQueuesCleanup(t *testing.T) {
	repo := newFakeBillboardRepo(domain.Billboard{
		ID:       "bb-1",
		StoreID:  "store-1",
		Label:    "summer",
		ImageURL: "https://cdn.example.com/v1/old-asset.jpg",
	})
	media := &fakeMediaDeleter{err: errMediaDown}
	cleanup := &fakeCleanupRepo{}
	svc := CreateBillboardService(repo, ownedStoreRepo(), media, cleanup, nil)

	resp, err := svc.UpdateBillboard(context.Background(), "owner", "store-1", "bb-1", dto.BillboardRequest{
		Label:    "autumn",
		ImageURL: "https://cdn.example.com/v1/new-asset.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "autumn", resp.Label)

	require.Len(t, cleanup.tasks, 1)
	assert.Equal(t, "old-asset", cleanup.tasks[0].AssetID)
}
