package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer  = http.StatusInternalServerError
	ErrStatusClient          = http.StatusBadRequest
	ErrStatusUnauthenticated = http.StatusForbidden
	ErrStatusNoStoreAccess   = http.StatusMethodNotAllowed
	ErrStatusNotFound        = http.StatusNotFound
	ErrStatusConflict        = http.StatusConflict
)

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrClient                 = errors.New("Bad request")
	ErrValidation             = errors.New("Invalid request payload")
	ErrUnauthenticated        = errors.New("Unauthenticated")
	ErrNoStoreAccess          = errors.New("Unauthorized")
	ErrNotFound               = errors.New("Resource not found")
	ErrRelatedResourceMissing = errors.New("Related resource not found")
	ErrReferencedRows         = errors.New("Resource is still referenced by other records")
	ErrConflict               = errors.New("Conflicting record found")
	ErrStoreIDRequired        = errors.New("Store id is required")
	ErrBillboardIDRequired    = errors.New("Billboard id is required")
	ErrCategoryIDRequired     = errors.New("Category id is required")
	ErrColorIDRequired        = errors.New("Color id is required")
	ErrSizeIDRequired         = errors.New("Size id is required")
	ErrProductIDRequired      = errors.New("Product id is required")
)

var errorMap = map[error]int{
	ErrInternalServer:         ErrStatusInternalServer,
	ErrClient:                 ErrStatusClient,
	ErrValidation:             ErrStatusClient,
	ErrUnauthenticated:        ErrStatusUnauthenticated,
	ErrNoStoreAccess:          ErrStatusNoStoreAccess,
	ErrNotFound:               ErrStatusNotFound,
	ErrRelatedResourceMissing: ErrStatusNotFound,
	ErrReferencedRows:         ErrStatusConflict,
	ErrConflict:               ErrStatusConflict,
	ErrStoreIDRequired:        ErrStatusClient,
	ErrBillboardIDRequired:    ErrStatusClient,
	ErrCategoryIDRequired:     ErrStatusClient,
	ErrColorIDRequired:        ErrStatusClient,
	ErrSizeIDRequired:         ErrStatusClient,
	ErrProductIDRequired:      ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
