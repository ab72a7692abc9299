package dto

import (
	"fmt"

	"github.com/Delvoid/ecom-admin/pkg/response"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type ProductImageRequest struct {
	URL string `json:"url"`
}

type ProductRequest struct {
	Name       string                `json:"name"`
	Price      float64               `json:"price"`
	CategoryID string                `json:"category_id"`
	ColorID    string                `json:"color_id"`
	SizeID     string                `json:"size_id"`
	Images     []ProductImageRequest `json:"images"`
	IsFeatured bool                  `json:"is_featured"`
	IsArchived bool                  `json:"is_archived"`
}

func (r ProductRequest) Validate() []response.ValidationError {
	var errs []response.ValidationError
	if len(r.Name) < 1 {
		errs = append(errs, response.ValidationError{Field: "name", Tag: "min=1"})
	}
	if r.Price <= 0 {
		errs = append(errs, response.ValidationError{Field: "price", Tag: "gt=0"})
	}
	if len(r.CategoryID) < 1 {
		errs = append(errs, response.ValidationError{Field: "category_id", Tag: "min=1"})
	}
	if len(r.ColorID) < 1 {
		errs = append(errs, response.ValidationError{Field: "color_id", Tag: "min=1"})
	}
	if len(r.SizeID) < 1 {
		errs = append(errs, response.ValidationError{Field: "size_id", Tag: "min=1"})
	}
	if len(r.Images) < 1 {
		errs = append(errs, response.ValidationError{Field: "images", Tag: "min=1"})
	}
	for i, img := range r.Images {
		if len(img.URL) < 1 {
			errs = append(errs, response.ValidationError{Field: fmt.Sprintf("images[%d].url", i), Tag: "min=1"})
		}
	}
	return errs
}

type ProductFilter struct {
	pkgdto.Filter
	CategoryID string `query:"category_id"`
	ColorID    string `query:"color_id"`
	SizeID     string `query:"size_id"`
	IsFeatured bool   `query:"is_featured"`
}
