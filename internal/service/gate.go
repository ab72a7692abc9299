package service

import (
	"context"

	"github.com/Delvoid/ecom-admin/internal/repository"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

// ensureStoreOwnership is the per-request ownership gate: the caller must own
// the store named in the path before any mutation proceeds. It runs on every
// mutating call; there is no caching across requests.
func ensureStoreOwnership(ctx context.Context, storeRepo repository.StoreRepository, storeID string, userID string) error {
	store, err := storeRepo.GetStoreByIDAndUserID(ctx, storeID, userID)
	if err != nil {
		return err
	}

	if store.ID == "" {
		return errs.ErrNoStoreAccess
	}

	return nil
}
