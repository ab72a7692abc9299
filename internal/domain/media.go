package domain

// MediaCleanupTask is a queued media-host deletion that failed inline and is
// retried by the background sweeper.
type MediaCleanupTask struct {
	ID        string `db:"id"`
	AssetID   string `db:"asset_id"`
	Attempts  int    `db:"attempts"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
