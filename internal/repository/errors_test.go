package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Delvoid/ecom-admin/pkg/errs"
)

func TestClassifyWriteError(t *testing.T) {
	fkErr := &pq.Error{Code: "23503"}
	assert.ErrorIs(t, classifyWriteError(fkErr, "test"), errs.ErrRelatedResourceMissing)

	uniqueErr := &pq.Error{Code: "23505"}
	assert.ErrorIs(t, classifyWriteError(uniqueErr, "test"), errs.ErrConflict)

	assert.ErrorIs(t, classifyWriteError(errors.New("connection reset"), "test"), errs.ErrInternalServer)
}

func TestClassifyDeleteError(t *testing.T) {
	fkErr := &pq.Error{Code: "23503"}
	assert.ErrorIs(t, classifyDeleteError(fkErr, "test"), errs.ErrReferencedRows)

	assert.ErrorIs(t, classifyDeleteError(errors.New("connection reset"), "test"), errs.ErrInternalServer)
}
