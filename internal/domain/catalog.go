package domain

type Billboard struct {
	ID        string `db:"id"`
	StoreID   string `db:"store_id"`
	Label     string `db:"label"`
	ImageURL  string `db:"image_url"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

type Category struct {
	ID          string `db:"id"`
	StoreID     string `db:"store_id"`
	BillboardID string `db:"billboard_id"`
	Name        string `db:"name"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

type Color struct {
	ID        string `db:"id"`
	StoreID   string `db:"store_id"`
	Name      string `db:"name"`
	Value     string `db:"value"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

type Size struct {
	ID        string `db:"id"`
	StoreID   string `db:"store_id"`
	Name      string `db:"name"`
	Value     string `db:"value"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
