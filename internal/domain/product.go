package domain

type Product struct {
	ID         string  `db:"id"`
	StoreID    string  `db:"store_id"`
	CategoryID string  `db:"category_id"`
	ColorID    string  `db:"color_id"`
	SizeID     string  `db:"size_id"`
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	IsFeatured bool    `db:"is_featured"`
	IsArchived bool    `db:"is_archived"`
	CreatedAt  int64   `db:"created_at"`
	UpdatedAt  int64   `db:"updated_at"`
	Images     []Image `db:"-"`
}

type Image struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	URL       string `db:"url"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
