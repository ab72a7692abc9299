package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "unauthenticated", err: ErrUnauthenticated, expected: http.StatusForbidden},
		{name: "no store access", err: ErrNoStoreAccess, expected: http.StatusMethodNotAllowed},
		{name: "validation", err: ErrValidation, expected: http.StatusBadRequest},
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "related resource missing", err: ErrRelatedResourceMissing, expected: http.StatusNotFound},
		{name: "referenced rows", err: ErrReferencedRows, expected: http.StatusConflict},
		{name: "internal", err: ErrInternalServer, expected: http.StatusInternalServerError},
		{name: "unknown errors flatten to 500", err: errors.New("pq: connection refused"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorStatusCode(tc.err))
		})
	}
}
