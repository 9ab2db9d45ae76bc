package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renthub/apperr"
	"renthub/models"
	"renthub/store"
)

var errDiskFull = errors.New("disk full")

// brokenRentals fails the selected calls after delegating the rest.
type brokenRentals struct {
	store.Rentals
	failInsert    bool
	failCountLive bool
}

func (r brokenRentals) Insert(rental *models.Rental) error {
	if r.failInsert {
		return apperr.Storage("insert rental", errDiskFull)
	}
	return r.Rentals.Insert(rental)
}

func (r brokenRentals) CountLive(propertyID int64) (int, error) {
	if r.failCountLive {
		return 0, apperr.Storage("count live rentals", errDiskFull)
	}
	return r.Rentals.CountLive(propertyID)
}

type brokenStore struct {
	store.Store
	rentals brokenRentals
}

func (s brokenStore) Rentals() store.Rentals {
	r := s.rentals
	r.Rentals = s.Store.Rentals()
	return r
}

// brokenDatabase hands the broken repositories to every transaction.
type brokenDatabase struct {
	store.Database
	rentals brokenRentals
}

func (d brokenDatabase) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return d.Database.Transaction(ctx, func(tx store.Store) error {
		return fn(brokenStore{Store: tx, rentals: d.rentals})
	})
}

func TestCreateRentalFailureLeavesPropertyAvailable(t *testing.T) {
	f := newFixture(t)
	owner := f.user("owner@example.com", models.ROLE_OWNER)
	tenant := f.user("tenant@example.com", models.ROLE_TENANT)
	p := f.property(owner)

	m := NewManager(brokenDatabase{Database: f.store, rentals: brokenRentals{failInsert: true}}, nil)
	_, err := m.CreateRental(ctx, owner, rentalInput(p.ID, tenant.ID))
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))

	assert.Equal(t, models.PROPERTY_STATUS_AVAILABLE, f.status(p.ID))
	rentals, err := f.store.Rentals().List(store.RentalFilter{PropertyID: p.ID})
	require.NoError(t, err)
	assert.Empty(t, rentals)
}

func TestDeleteRentalFailureKeepsRentalAndStatus(t *testing.T) {
	f := newFixture(t)
	owner := f.user("owner@example.com", models.ROLE_OWNER)
	tenant := f.user("tenant@example.com", models.ROLE_TENANT)
	p := f.property(owner)
	r := f.rental(owner, p.ID, tenant)

	m := NewManager(brokenDatabase{Database: f.store, rentals: brokenRentals{failCountLive: true}}, nil)
	err := m.DeleteRental(ctx, owner, r.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsStorage(err))

	_, err = f.store.Rentals().FindByID(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PROPERTY_STATUS_RENTED, f.status(p.ID))
}

func TestRentalTransitionFailureKeepsStatus(t *testing.T) {
	f := newFixture(t)
	owner := f.user("owner@example.com", models.ROLE_OWNER)
	tenant := f.user("tenant@example.com", models.ROLE_TENANT)
	p := f.property(owner)
	r := f.rental(owner, p.ID, tenant)

	m := NewManager(brokenDatabase{Database: f.store, rentals: brokenRentals{failCountLive: true}}, nil)
	require.Error(t, m.UpdateRentalStatus(ctx, owner, r.ID, models.RENTAL_STATUS_TERMINATED))

	stored, err := f.store.Rentals().FindByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RENTAL_STATUS_PENDING, stored.Status)
	assert.Equal(t, models.PROPERTY_STATUS_RENTED, f.status(p.ID))
}
