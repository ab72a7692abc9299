package domain

type Store struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	UserID    string `db:"user_id"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
