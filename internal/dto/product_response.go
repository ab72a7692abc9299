package dto

type ProductImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductResponse struct {
	ID         string                 `json:"id"`
	StoreID    string                 `json:"store_id"`
	CategoryID string                 `json:"category_id"`
	ColorID    string                 `json:"color_id"`
	SizeID     string                 `json:"size_id"`
	Name       string                 `json:"name"`
	Price      float64                `json:"price"`
	IsFeatured bool                   `json:"is_featured"`
	IsArchived bool                   `json:"is_archived"`
	Images     []ProductImageResponse `json:"images"`
	CreatedAt  int64                  `json:"created_at"`
	UpdatedAt  int64                  `json:"updated_at"`
}
