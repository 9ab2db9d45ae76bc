// Package store declares the persistence capability consumed by the core.
//
// Implementations translate "no row" into *apperr.NotFoundError, unique
// violations into *apperr.ConflictError and everything else into
// *apperr.StorageError.
package store

import (
	"context"
	"time"

	"renthub/models"
)

type Users interface {
	FindByID(id int64) (models.User, error)
	FindByEmail(email string) (models.User, error)
	FindByRole(role string) ([]models.User, error)
	List() ([]models.User, error)
	Create(user *models.User) error
	UpdateRole(id int64, role string) error
	UpdatePassword(id int64, hash string) error
	Delete(id int64) error
}

// PropertyFilter narrows a property search. Zero values do not filter.
type PropertyFilter struct {
	OwnerID      int64
	Statuses     []string
	City         string
	PropertyType string
	Query        string
	MinRent      float64
	MaxRent      float64
	MinBedrooms  int
	Furnished    *bool
	Limit        int
	Offset       int
}

type Properties interface {
	FindByID(id int64) (models.Property, error)
	Search(filter PropertyFilter) ([]models.Property, error)
	IDsByOwner(ownerID int64) ([]int64, error)
	Create(property *models.Property) error
	Update(property *models.Property) error
	UpdateStatus(id int64, status string) error
	// SwapStatus moves the property from one status to another only when it is
	// currently in "from". It reports whether a row changed.
	SwapStatus(id int64, from, to string) (bool, error)
	Delete(id int64) error
}

type PropertyImages interface {
	ListByProperty(propertyID int64) ([]models.PropertyImage, error)
	Create(image *models.PropertyImage) error
	DeleteByProperty(propertyID int64) error
}

// RentalFilter narrows a rental listing. Zero values do not filter.
type RentalFilter struct {
	OwnerID    int64
	TenantID   int64
	PropertyID int64
	Statuses   []string
	EndsBefore time.Time
}

type Rentals interface {
	Insert(rental *models.Rental) error
	FindByID(id int64) (models.Rental, error)
	Update(rental *models.Rental) error
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	List(filter RentalFilter) ([]models.Rental, error)
	CountLive(propertyID int64) (int, error)
	DeleteByProperty(propertyID int64) error
}

type Favorites interface {
	Find(tenantID, propertyID int64) (models.Favorite, error)
	Add(favorite *models.Favorite) error
	Remove(tenantID, propertyID int64) error
	ListByTenant(tenantID int64) ([]models.Favorite, error)
	DeleteByProperty(propertyID int64) error
	DeleteByTenant(tenantID int64) error
}

// ContactRequestFilter narrows a contact request listing. Zero values do not filter.
type ContactRequestFilter struct {
	OwnerID  int64
	TenantID int64
}

type ContactRequests interface {
	Create(request *models.ContactRequest) error
	FindByID(id int64) (models.ContactRequest, error)
	UpdateStatus(id int64, status string) error
	List(filter ContactRequestFilter) ([]models.ContactRequest, error)
	DeleteByProperty(propertyID int64) error
	DeleteByUser(userID int64) error
}

type Messages interface {
	Create(message *models.Message) error
	ListForUser(userID int64) ([]models.Message, error)
	DetachProperty(propertyID int64) error
	DeleteByUser(userID int64) error
}

type ResetCodes interface {
	Create(code *models.ResetCode) error
	Latest(userID int64) (models.ResetCode, error)
	DeleteByUser(userID int64) error
}

// Store groups the repositories bound to one connection or transaction.
type Store interface {
	Users() Users
	Properties() Properties
	PropertyImages() PropertyImages
	Rentals() Rentals
	Favorites() Favorites
	ContactRequests() ContactRequests
	Messages() Messages
	ResetCodes() ResetCodes
}

// Database is a Store plus a unit of work. fn receives a Store bound to the
// transaction; returning an error rolls everything back.
type Database interface {
	Store
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
