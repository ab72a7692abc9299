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

func productRequest(urls ...string) dto.ProductRequest {
	req := dto.ProductRequest{
		Name:       "air max",
		Price:      120,
		CategoryID: "cat-1",
		ColorID:    "color-1",
		SizeID:     "size-1",
	}
	for _, url := range urls {
		req.Images = append(req.Images, dto.ProductImageRequest{URL: url})
	}
	return req
}

func TestAddProductDeniedForNonOwner(t *testing.T) {
	repo := newFakeProductRepo()
	svc := CreateProductService(repo, ownedStoreRepo(), &fakeMediaDeleter{}, &fakeCleanupRepo{}, nil)

	_, err := svc.AddProduct(context.Background(), "someone-else", "store-1", productRequest("https://cdn.example.com/v1/a.jpg"))

	assert.ErrorIs(t, err, errs.ErrNoStoreAccess)
	assert.Empty(t, repo.products)
}

func TestAddProductStoresImageSet(t *testing.T) {
	repo := newFakeProductRepo()
	svc := CreateProductService(repo, ownedStoreRepo(), &fakeMediaDeleter{}, &fakeCleanupRepo{}, nil)

	resp, err := svc.AddProduct(context.Background(), "owner", "store-1", productRequest(
		"https://cdn.example.com/v1/a.jpg",
		"https://cdn.example.com/v1/b.jpg",
	))
	require.NoError(t, err)

	assert.Len(t, resp.Images, 2)
	assert.Len(t, repo.images[resp.ID], 2)
	assert.Equal(t, "store-1", repo.products[resp.ID].StoreID)
}

func TestUpdateProductReplacesImageSetAndDeletesStaleAssets(t *testing.T) {
	repo := newFakeProductRepo()
	media := &fakeMediaDeleter{}
	svc := CreateProductService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	created, err := svc.AddProduct(context.Background(), "owner", "store-1", productRequest(
		"https://cdn.example.com/v1/a.jpg",
		"https://cdn.example.com/v1/b.jpg",
	))
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), "owner", "store-1", created.ID, productRequest(
		"https://cdn.example.com/v1/b.jpg",
		"https://cdn.example.com/v1/c.jpg",
	))
	require.NoError(t, err)

	// only the asset that dropped out of the set is removed from the host
	assert.Equal(t, []string{"a"}, media.allDeleted())

	var urls []string
	for _, image := range repo.images[created.ID] {
		urls = append(urls, image.URL)
	}
	assert.ElementsMatch(t, []string{
		"https://cdn.example.com/v1/b.jpg",
		"https://cdn.example.com/v1/c.jpg",
	}, urls)
	assert.Len(t, updated.Images, 2)
}

func TestUpdateProductMediaFailureQueuesCleanup(t *testing.T) {
	repo := newFakeProductRepo()
	media := &fakeMediaDeleter{}
	cleanup := &fakeCleanupRepo{}
	svc := CreateProductService(repo, ownedStoreRepo(), media, cleanup, nil)

	created, err := svc.AddProduct(context.Background(), "owner", "store-1", productRequest(
		"https://cdn.example.com/v1/a.jpg",
	))
	require.NoError(t, err)

	media.err = errMediaDown
	_, err = svc.UpdateProduct(context.Background(), "owner", "store-1", created.ID, productRequest(
		"https://cdn.example.com/v1/b.jpg",
	))
	require.NoError(t, err)

	require.Len(t, cleanup.tasks, 1)
	assert.Equal(t, "a", cleanup.tasks[0].AssetID)
}

func TestUpdateProductCommitFailureKeepsAssets(t *testing.T) {
	repo := newFakeProductRepo()
	media := &fakeMediaDeleter{}
	svc := CreateProductService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	created, err := svc.AddProduct(context.Background(), "owner", "store-1", productRequest(
		"https://cdn.example.com/v1/a.jpg",
	))
	require.NoError(t, err)

	repo.commitErr = errs.ErrInternalServer
	_, err = svc.UpdateProduct(context.Background(), "owner", "store-1", created.ID, productRequest(
		"https://cdn.example.com/v1/b.jpg",
	))
	require.ErrorIs(t, err, errs.ErrInternalServer)

	// the write never persisted, so the host must keep every referenced asset
	assert.Empty(t, media.allDeleted())
	require.Len(t, repo.images[created.ID], 1)
	assert.Equal(t, "https://cdn.example.com/v1/a.jpg", repo.images[created.ID][0].URL)
}

func TestUpdateProductMissingRow(t *testing.T) {
	repo := newFakeProductRepo()
	svc := CreateProductService(repo, ownedStoreRepo(), &fakeMediaDeleter{}, &fakeCleanupRepo{}, nil)

	_, err := svc.UpdateProduct(context.Background(), "owner", "store-1", "missing", productRequest("https://cdn.example.com/v1/a.jpg"))

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteProductRemovesAllAssets(t *testing.T) {
	repo := newFakeProductRepo()
	media := &fakeMediaDeleter{}
	svc := CreateProductService(repo, ownedStoreRepo(), media, &fakeCleanupRepo{}, nil)

	created, err := svc.AddProduct(context.Background(), "owner", "store-1", productRequest(
		"https://cdn.example.com/v1/a.jpg",
		"https://cdn.example.com/v1/b.jpg",
	))
	require.NoError(t, err)

	err = svc.DeleteProduct(context.Background(), "owner", "store-1", created.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, media.allDeleted())
	assert.NotContains(t, repo.products, created.ID)
	assert.NotContains(t, repo.images, created.ID)
}

func TestStaleAssetIDs(t *testing.T) {
	old := []domain.Image{
		{URL: "https://cdn.example.com/v1/a.jpg"},
		{URL: "https://cdn.example.com/v1/b.jpg"},
		{URL: "https://cdn.example.com/v1/b.png"},
	}
	updated := []domain.Image{
		{URL: "https://cdn.example.com/v1/b.jpg"},
		{URL: "https://cdn.example.com/v1/c.jpg"},
	}

	assert.Equal(t, []string{"a"}, staleAssetIDs(old, updated))
	assert.Empty(t, staleAssetIDs(old, old))
	assert.ElementsMatch(t, []string{"a", "b"}, staleAssetIDs(old, nil))
}
