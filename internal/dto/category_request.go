package dto

import (
	"github.com/Delvoid/ecom-admin/pkg/response"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboard_id"`
}

func (r CategoryRequest) Validate() []response.ValidationError {
	var errs []response.ValidationError
	if len(r.Name) < 2 {
		errs = append(errs, response.ValidationError{Field: "name", Tag: "min=2"})
	}
	if len(r.BillboardID) < 1 {
		errs = append(errs, response.ValidationError{Field: "billboard_id", Tag: "min=1"})
	}
	return errs
}
