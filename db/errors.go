package db

import (
	"errors"
	"strings"

	"renthub/apperr"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// classify maps a gorm error onto the apperr taxonomy.
func classify(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	if gorm.IsRecordNotFoundError(err) {
		return apperr.NotFound(resource)
	}
	if isUniqueViolation(err) {
		return apperr.Conflict("%s already exists", resource)
	}
	return apperr.Storage(op, err)
}

// affected turns a write that matched no rows into a NotFoundError.
func affected(op, resource string, res *gorm.DB) error {
	if res.Error != nil {
		return classify(op, resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
