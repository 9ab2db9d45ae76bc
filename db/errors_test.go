package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renthub/apperr"
	"renthub/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	g, err := gorm.Open("postgres", sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })
	return NewStore(g), mock
}

func TestDriverFailureBecomesStorageError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "properties"`).WillReturnError(errors.New("connection reset by peer"))

	_, err := s.Properties().FindByID(1)
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))
	assert.False(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmptyResultBecomesNotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "rentals"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Rentals().FindByID(42)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "rental", nf.Resource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUniqueViolationBecomesConflict(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favorites"`).WillReturnError(&pq.Error{Code: pqUniqueViolation})
	mock.ExpectRollback()

	err := s.Favorites().Add(&models.Favorite{TenantID: 1, PropertyID: 2})
	var conflict *apperr.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify("op", "thing", nil))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: favorites.tenant_id")))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
}
