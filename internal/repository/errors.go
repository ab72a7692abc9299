package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/pkg/errs"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// classifyWriteError translates insert/update failures. A foreign-key
// violation here means a referenced parent row is missing.
func classifyWriteError(err error, component string) error {
	log.Error().Err(err).Str("component", component).Msg("")

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return errs.ErrRelatedResourceMissing
		case pqUniqueViolation:
			return errs.ErrConflict
		}
	}

	return errs.ErrInternalServer
}

// classifyDeleteError translates delete failures. A foreign-key violation
// here means dependent rows still reference the target.
func classifyDeleteError(err error, component string) error {
	log.Error().Err(err).Str("component", component).Msg("")

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqForeignKeyViolation {
			return errs.ErrReferencedRows
		}
	}

	return errs.ErrInternalServer
}
