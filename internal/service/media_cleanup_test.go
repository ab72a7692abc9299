package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Delvoid/ecom-admin/internal/domain"
)

func TestProcessPendingCleanupsDeletesRecoveredAssets(t *testing.T) {
	cleanup := &fakeCleanupRepo{tasks: []domain.MediaCleanupTask{
		{ID: "task-1", AssetID: "a"},
		{ID: "task-2", AssetID: "b"},
	}}
	media := &fakeMediaDeleter{}
	svc := CreateMediaCleanupService(cleanup, media)

	svc.ProcessPendingCleanups()

	assert.ElementsMatch(t, []string{"a", "b"}, media.allDeleted())
	assert.ElementsMatch(t, []string{"task-1", "task-2"}, cleanup.deletedIDs)
}

func TestProcessPendingCleanupsBumpsAttemptsOnFailure(t *testing.T) {
	cleanup := &fakeCleanupRepo{tasks: []domain.MediaCleanupTask{
		{ID: "task-1", AssetID: "a", Attempts: 1},
	}}
	media := &fakeMediaDeleter{err: errMediaDown}
	svc := CreateMediaCleanupService(cleanup, media)

	svc.ProcessPendingCleanups()

	assert.Empty(t, cleanup.deletedIDs)
	assert.Equal(t, []string{"task-1"}, cleanup.bumpedIDs)
	assert.Equal(t, 2, cleanup.tasks[0].Attempts)
}

func TestProcessPendingCleanupsDropsExhaustedTasks(t *testing.T) {
	cleanup := &fakeCleanupRepo{tasks: []domain.MediaCleanupTask{
		{ID: "task-1", AssetID: "a", Attempts: maxCleanupAttempts - 1},
	}}
	media := &fakeMediaDeleter{err: errMediaDown}
	svc := CreateMediaCleanupService(cleanup, media)

	svc.ProcessPendingCleanups()

	assert.Empty(t, cleanup.tasks)
}
