package dto

import (
	"github.com/Delvoid/ecom-admin/pkg/response"
)

type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}

func (r BillboardRequest) Validate() []response.ValidationError {
	var errs []response.ValidationError
	if len(r.Label) < 1 {
		errs = append(errs, response.ValidationError{Field: "label", Tag: "min=1"})
	}
	if len(r.ImageURL) < 1 {
		errs = append(errs, response.ValidationError{Field: "image_url", Tag: "min=1"})
	}
	return errs
}
