package dto

import (
	"github.com/Delvoid/ecom-admin/pkg/response"
)

type StoreRequest struct {
	Name string `json:"name"`
}

func (r StoreRequest) Validate() []response.ValidationError {
	var errs []response.ValidationError
	if len(r.Name) < 1 {
		errs = append(errs, response.ValidationError{Field: "name", Tag: "min=1"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, response.ValidationError{Field: "name", Tag: "max=255"})
	}
	return errs
}
