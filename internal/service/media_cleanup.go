package service

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/internal/repository"
)

const maxCleanupAttempts = 5

// removeAssetsBestEffort deletes media-host assets after the database commit.
// Failures never propagate; the asset ids are queued for the background
// sweeper instead.
func removeAssetsBestEffort(ctx context.Context, media MediaDeleter, cleanupRepo repository.MediaCleanupRepository, assetIDs []string) {
	if len(assetIDs) == 0 {
		return
	}

	err := media.DeleteAssets(ctx, assetIDs)
	if err == nil {
		return
	}

	log.Error().Err(err).Str("component", "removeAssetsBestEffort").Msg("media host deletion failed, queueing for retry")

	timestamp := time.Now().UnixMilli()
	tasks := make([]domain.MediaCleanupTask, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		tasks = append(tasks, domain.MediaCleanupTask{
			ID:        ulid.Make().String(),
			AssetID:   assetID,
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		})
	}

	if err := cleanupRepo.AddCleanupTasks(ctx, tasks); err != nil {
		log.Error().Err(err).Str("component", "removeAssetsBestEffort").Msg("failed to queue cleanup tasks")
	}
}

type MediaCleanupServiceImpl struct {
	repo  repository.MediaCleanupRepository
	media MediaDeleter
}

func CreateMediaCleanupService(repo repository.MediaCleanupRepository, media MediaDeleter) MediaCleanupService {
	return &MediaCleanupServiceImpl{repo: repo, media: media}
}

// ProcessPendingCleanups is run on a schedule. Each pending asset deletion is
// retried once per sweep; entries that keep failing are dropped after
// maxCleanupAttempts.
func (s *MediaCleanupServiceImpl) ProcessPendingCleanups() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tasks, err := s.repo.GetPendingTasks(ctx, 50)
	if err != nil {
		log.Error().Err(err).Str("component", "ProcessPendingCleanups").Msg("")
		return
	}

	for _, task := range tasks {
		if err := s.media.DeleteAssets(ctx, []string{task.AssetID}); err != nil {
			log.Error().Err(err).Str("component", "ProcessPendingCleanups").Str("asset_id", task.AssetID).Msg("retry failed")
			if err := s.repo.IncrementAttempts(ctx, task.ID); err != nil {
				log.Error().Err(err).Str("component", "ProcessPendingCleanups").Msg("")
			}
			continue
		}

		if err := s.repo.DeleteTask(ctx, task.ID); err != nil {
			log.Error().Err(err).Str("component", "ProcessPendingCleanups").Msg("")
		}
	}

	dropped, err := s.repo.DeleteExhaustedTasks(ctx, maxCleanupAttempts)
	if err != nil {
		log.Error().Err(err).Str("component", "ProcessPendingCleanups").Msg("")
		return
	}

	if dropped > 0 {
		log.Warn().Int64("dropped", dropped).Str("component", "ProcessPendingCleanups").Msg("dropped cleanup tasks after max attempts")
	}
}
