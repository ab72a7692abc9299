package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/domain"
	"github.com/Delvoid/ecom-admin/pkg/errs"
)

type MediaCleanupRepositoryImpl struct {
	db *sqlx.DB
}

func CreateMediaCleanupRepository(db *sqlx.DB) MediaCleanupRepository {
	return &MediaCleanupRepositoryImpl{db: db}
}

func (r *MediaCleanupRepositoryImpl) AddCleanupTasks(ctx context.Context, data []domain.MediaCleanupTask) (err error) {
	if len(data) == 0 {
		return nil
	}

	_, err = r.db.NamedExecContext(ctx, "INSERT INTO media_cleanup_queue(id, asset_id, attempts, created_at, updated_at) VALUES (:id, :asset_id, :attempts, :created_at, :updated_at)", data)
	if err != nil {
		return classifyWriteError(err, "AddCleanupTasks")
	}

	return nil
}

func (r *MediaCleanupRepositoryImpl) GetPendingTasks(ctx context.Context, limit int) (data []domain.MediaCleanupTask, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM media_cleanup_queue ORDER BY created_at LIMIT $1", limit)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPendingTasks").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MediaCleanupRepositoryImpl) DeleteTask(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM media_cleanup_queue WHERE id = $1", id)
	if err != nil {
		return classifyDeleteError(err, "DeleteTask")
	}

	return nil
}

func (r *MediaCleanupRepositoryImpl) IncrementAttempts(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE media_cleanup_queue SET attempts = attempts + 1, updated_at = (EXTRACT(EPOCH FROM NOW()) * 1000)::BIGINT WHERE id = $1", id)
	if err != nil {
		return classifyWriteError(err, "IncrementAttempts")
	}

	return nil
}

func (r *MediaCleanupRepositoryImpl) DeleteExhaustedTasks(ctx context.Context, maxAttempts int) (rowsAffected int64, err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM media_cleanup_queue WHERE attempts >= $1", maxAttempts)
	if err != nil {
		return 0, classifyDeleteError(err, "DeleteExhaustedTasks")
	}

	rowsAffected, err = res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteExhaustedTasks").Msg("")
		return 0, errs.ErrInternalServer
	}

	return rowsAffected, nil
}
