package service

import (
	"context"
	"errors"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/repository"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type fakeStoreRepo struct {
	stores map[string]domain.Store
}

func newFakeStoreRepo(stores ...domain.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: map[string]domain.Store{}}
	for _, store := range stores {
		r.stores[store.ID] = store
	}
	return r
}

func (r *fakeStoreRepo) AddStore(ctx context.Context, data domain.Store) error {
	r.stores[data.ID] = data
	return nil
}

func (r *fakeStoreRepo) GetStoreByIDAndUserID(ctx context.Context, id string, userID string) (domain.Store, error) {
	store, ok := r.stores[id]
	if !ok || store.UserID != userID {
		return domain.Store{}, nil
	}
	return store, nil
}

func (r *fakeStoreRepo) GetStoresByUserID(ctx context.Context, userID string) ([]domain.Store, error) {
	var out []domain.Store
	for _, store := range r.stores {
		if store.UserID == userID {
			out = append(out, store)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) UpdateStore(ctx context.Context, data domain.Store) (int64, error) {
	store, ok := r.stores[data.ID]
	if !ok || store.UserID != data.UserID {
		return 0, nil
	}
	store.Name = data.Name
	store.UpdatedAt = data.UpdatedAt
	r.stores[data.ID] = store
	return 1, nil
}

func (r *fakeStoreRepo) DeleteStore(ctx context.Context, id string, userID string) (int64, error) {
	store, ok := r.stores[id]
	if !ok || store.UserID != userID {
		return 0, nil
	}
	delete(r.stores, id)
	return 1, nil
}

type fakeBillboardRepo struct {
	billboards map[string]domain.Billboard
}

func newFakeBillboardRepo(billboards ...domain.Billboard) *fakeBillboardRepo {
	r := &fakeBillboardRepo{billboards: map[string]domain.Billboard{}}
	for _, billboard := range billboards {
		r.billboards[billboard.ID] = billboard
	}
	return r
}

func (r *fakeBillboardRepo) AddBillboard(ctx context.Context, data domain.Billboard) error {
	r.billboards[data.ID] = data
	return nil
}

func (r *fakeBillboardRepo) GetBillboardsByStoreID(ctx context.Context, storeID string, filter pkgdto.Filter) ([]domain.Billboard, error) {
	var out []domain.Billboard
	for _, billboard := range r.billboards {
		if billboard.StoreID == storeID {
			out = append(out, billboard)
		}
	}
	return out, nil
}

func (r *fakeBillboardRepo) GetBillboardByID(ctx context.Context, id string) (domain.Billboard, error) {
	return r.billboards[id], nil
}

func (r *fakeBillboardRepo) UpdateBillboard(ctx context.Context, data domain.Billboard) error {
	r.billboards[data.ID] = data
	return nil
}

func (r *fakeBillboardRepo) DeleteBillboard(ctx context.Context, id string) error {
	delete(r.billboards, id)
	return nil
}

type fakeProductRepo struct {
	products  map[string]domain.Product
	images    map[string][]domain.Image
	trxErr    error
	commitErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]domain.Product{},
		images:   map[string][]domain.Image{},
	}
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) error {
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepo) AddProductImages(ctx context.Context, data []domain.Image) error {
	for _, image := range data {
		r.images[image.ProductID] = append(r.images[image.ProductID], image)
	}
	return nil
}

func (r *fakeProductRepo) GetProductsByStoreID(ctx context.Context, storeID string, filter dto.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		if product.StoreID == storeID {
			out = append(out, product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetProductImages(ctx context.Context, productID string) ([]domain.Image, error) {
	return r.images[productID], nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepo) DeleteProductImages(ctx context.Context, productID string) error {
	delete(r.images, productID)
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	delete(r.products, id)
	delete(r.images, id)
	return nil
}

func (r *fakeProductRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	if r.trxErr != nil {
		return r.trxErr
	}

	products := make(map[string]domain.Product, len(r.products))
	for id, product := range r.products {
		products[id] = product
	}
	images := make(map[string][]domain.Image, len(r.images))
	for id, set := range r.images {
		images[id] = set
	}

	err := fn(ctx, r)
	if err == nil {
		err = r.commitErr
	}
	if err != nil {
		r.products = products
		r.images = images
	}

	return err
}

type fakeMediaDeleter struct {
	deleted [][]string
	err     error
}

func (m *fakeMediaDeleter) DeleteAssets(ctx context.Context, publicIDs []string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, publicIDs)
	return nil
}

func (m *fakeMediaDeleter) allDeleted() []string {
	var out []string
	for _, batch := range m.deleted {
		out = append(out, batch...)
	}
	return out
}

type fakeCleanupRepo struct {
	tasks      []domain.MediaCleanupTask
	deletedIDs []string
	bumpedIDs  []string
}

func (r *fakeCleanupRepo) AddCleanupTasks(ctx context.Context, data []domain.MediaCleanupTask) error {
	r.tasks = append(r.tasks, data...)
	return nil
}

func (r *fakeCleanupRepo) GetPendingTasks(ctx context.Context, limit int) ([]domain.MediaCleanupTask, error) {
	if len(r.tasks) > limit {
		return r.tasks[:limit], nil
	}
	return r.tasks, nil
}

func (r *fakeCleanupRepo) DeleteTask(ctx context.Context, id string) error {
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *fakeCleanupRepo) IncrementAttempts(ctx context.Context, id string) error {
	r.bumpedIDs = append(r.bumpedIDs, id)
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Attempts++
		}
	}
	return nil
}

func (r *fakeCleanupRepo) DeleteExhaustedTasks(ctx context.Context, maxAttempts int) (int64, error) {
	var kept []domain.MediaCleanupTask
	var dropped int64
	for _, task := range r.tasks {
		if task.Attempts >= maxAttempts {
			dropped++
			continue
		}
		kept = append(kept, task)
	}
	r.tasks = kept
	return dropped, nil
}

var errMediaDown = errors.New("media host unavailable")
