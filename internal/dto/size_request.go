package dto

import (
	"github.com/Delvoid/ecom-admin/pkg/response"
)

type SizeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (r SizeRequest) Validate() []response.ValidationError {
	var errs []response.ValidationError
	if len(r.Name) < 2 {
		errs = append(errs, response.ValidationError{Field: "name", Tag: "min=2"})
	}
	if len(r.Value) < 1 {
		errs = append(errs, response.ValidationError{Field: "value", Tag: "min=1"})
	}
	return errs
}
