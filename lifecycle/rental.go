package lifecycle

import (
	"context"
	"time"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
	"renthub/store"
)

// rentalTransitions lists the statuses reachable from each status.
// expired and terminated are final.
var rentalTransitions = map[string][]string{
	models.RENTAL_STATUS_PENDING: {models.RENTAL_STATUS_ACTIVE, models.RENTAL_STATUS_TERMINATED},
	models.RENTAL_STATUS_ACTIVE:  {models.RENTAL_STATUS_EXPIRED, models.RENTAL_STATUS_TERMINATED},
}

func canTransition(from, to string) bool {
	for _, next := range rentalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RentalInput carries the fields an owner supplies. Zero amounts on creation
// default to the property's rent and deposit; on update, zero values keep
// the current ones.
type RentalInput struct {
	PropertyID      int64     `json:"property_id"`
	TenantID        int64     `json:"tenant_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	RentAmount      float64   `json:"rent_amount"`
	SecurityDeposit float64   `json:"security_deposit"`
	Status          string    `json:"status"`
}

// CreateRental rents an available property to a tenant. The rental insert
// and the property flip to "rented" commit together.
func (m *Manager) CreateRental(ctx context.Context, p policy.Principal, in RentalInput) (models.Rental, error) {
	var rental models.Rental

	if in.PropertyID == 0 {
		return rental, apperr.Invalid("property_id", "is required")
	}
	if in.TenantID == 0 {
		return rental, apperr.Invalid("tenant_id", "is required")
	}
	if err := checkDates(in.StartDate, in.EndDate); err != nil {
		return rental, err
	}
	status := in.Status
	if status == "" {
		status = models.RENTAL_STATUS_PENDING
	}
	if status != models.RENTAL_STATUS_PENDING && status != models.RENTAL_STATUS_ACTIVE {
		return rental, apperr.Invalid("status", "a new rental is pending or active")
	}

	err := m.db.Transaction(ctx, func(tx store.Store) error {
		property, err := tx.Properties().FindByID(in.PropertyID)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionCreateRental, policy.PropertyResource(property)); err != nil {
			return err
		}

		tenant, err := tx.Users().FindByID(in.TenantID)
		if apperr.IsNotFound(err) {
			return apperr.NotFound("tenant")
		} else if err != nil {
			return err
		}
		if tenant.EffectiveRole() != models.ROLE_TENANT {
			return apperr.Invalid("tenant_id", "user is not a tenant")
		}

		if property.Status != models.PROPERTY_STATUS_AVAILABLE {
			return apperr.Conflict("property %d is not available", property.ID)
		}
		swapped, err := tx.Properties().SwapStatus(property.ID, models.PROPERTY_STATUS_AVAILABLE, models.PROPERTY_STATUS_RENTED)
		if err != nil {
			return err
		}
		if !swapped {
			return apperr.Conflict("property %d is not available", property.ID)
		}

		rental = models.Rental{
			PropertyID:      property.ID,
			TenantID:        tenant.ID,
			OwnerID:         property.OwnerID,
			StartDate:       in.StartDate,
			EndDate:         in.EndDate,
			RentAmount:      in.RentAmount,
			SecurityDeposit: in.SecurityDeposit,
			Status:          status,
		}
		if rental.RentAmount <= 0 {
			rental.RentAmount = property.RentAmount
		}
		if rental.SecurityDeposit <= 0 {
			rental.SecurityDeposit = property.SecurityDeposit
		}
		return tx.Rentals().Insert(&rental)
	})
	return rental, err
}

// UpdateRental edits dates and amounts. A non-empty Status is applied
// through the rental state machine.
func (m *Manager) UpdateRental(ctx context.Context, p policy.Principal, id int64, in RentalInput) (models.Rental, error) {
	var rental models.Rental
	err := m.db.Transaction(ctx, func(tx store.Store) error {
		var err error
		rental, err = tx.Rentals().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionUpdateRental, policy.RentalResource(rental)); err != nil {
			return err
		}
		if !rental.IsLive() {
			return apperr.Conflict("rental %d is %s and can no longer be edited", rental.ID, rental.Status)
		}

		if !in.StartDate.IsZero() {
			rental.StartDate = in.StartDate
		}
		if !in.EndDate.IsZero() {
			rental.EndDate = in.EndDate
		}
		if err := checkDates(rental.StartDate, rental.EndDate); err != nil {
			return err
		}
		if in.RentAmount > 0 {
			rental.RentAmount = in.RentAmount
		}
		if in.SecurityDeposit > 0 {
			rental.SecurityDeposit = in.SecurityDeposit
		}

		if in.Status != "" && in.Status != rental.Status {
			if err := m.transitionRental(tx, &rental, in.Status); err != nil {
				return err
			}
		}
		return tx.Rentals().Update(&rental)
	})
	return rental, err
}

func (m *Manager) UpdateRentalStatus(ctx context.Context, p policy.Principal, id int64, status string) error {
	return m.db.Transaction(ctx, func(tx store.Store) error {
		rental, err := tx.Rentals().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionUpdateRental, policy.RentalResource(rental)); err != nil {
			return err
		}
		return m.transitionRental(tx, &rental, status)
	})
}

// transitionRental moves the rental to status and, once it is no longer
// live, frees the property.
func (m *Manager) transitionRental(tx store.Store, rental *models.Rental, status string) error {
	if !models.IsValidRentalStatus(status) {
		return apperr.Invalid("status", "invalid rental status")
	}
	if status == rental.Status {
		return nil
	}
	if !canTransition(rental.Status, status) {
		return apperr.Conflict("rental cannot go from %s to %s", rental.Status, status)
	}
	if err := tx.Rentals().UpdateStatus(rental.ID, status); err != nil {
		return err
	}
	rental.Status = status
	if rental.IsLive() {
		return nil
	}
	return releaseProperty(tx, rental.PropertyID)
}

// DeleteRental hard-deletes the rental and frees its property.
func (m *Manager) DeleteRental(ctx context.Context, p policy.Principal, id int64) error {
	return m.db.Transaction(ctx, func(tx store.Store) error {
		rental, err := tx.Rentals().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionDeleteRental, policy.RentalResource(rental)); err != nil {
			return err
		}
		if err := tx.Rentals().Delete(rental.ID); err != nil {
			return err
		}
		return releaseProperty(tx, rental.PropertyID)
	})
}

// releaseProperty puts a rented property back to available once no live
// rental references it. Properties in any other status are left alone.
func releaseProperty(tx store.Store, propertyID int64) error {
	live, err := tx.Rentals().CountLive(propertyID)
	if err != nil {
		return err
	}
	if live > 0 {
		return nil
	}
	_, err = tx.Properties().SwapStatus(propertyID, models.PROPERTY_STATUS_RENTED, models.PROPERTY_STATUS_AVAILABLE)
	return err
}

// ListRentals returns the rentals visible to the caller.
func (m *Manager) ListRentals(ctx context.Context, p policy.Principal) ([]models.Rental, error) {
	scope, err := policy.RentalScope(p)
	if err != nil {
		return nil, err
	}
	if scope.All {
		return m.db.Rentals().List(store.RentalFilter{})
	}
	return m.db.Rentals().List(store.RentalFilter{OwnerID: scope.OwnerID, TenantID: scope.TenantID})
}

func (m *Manager) ListAllRentals(ctx context.Context, p policy.Principal) ([]models.Rental, error) {
	if err := m.authorize(p, policy.ActionViewAllRentals, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Rentals().List(store.RentalFilter{})
}

// ExpireDueRentals closes every live rental whose end date is before now:
// active rentals become expired, pending ones that never started become
// terminated. Properties left without a live rental are freed.
func (m *Manager) ExpireDueRentals(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	err := m.db.Transaction(ctx, func(tx store.Store) error {
		due, err := tx.Rentals().List(store.RentalFilter{
			Statuses:   models.LiveRentalStatuses,
			EndsBefore: now,
		})
		if err != nil {
			return err
		}
		for i := range due {
			next := models.RENTAL_STATUS_EXPIRED
			if due[i].Status == models.RENTAL_STATUS_PENDING {
				next = models.RENTAL_STATUS_TERMINATED
			}
			if err := m.transitionRental(tx, &due[i], next); err != nil {
				return err
			}
		}
		expired = len(due)
		return nil
	})
	return expired, err
}

func checkDates(start, end time.Time) error {
	if start.IsZero() {
		return apperr.Invalid("start_date", "is required")
	}
	if end.IsZero() {
		return apperr.Invalid("end_date", "is required")
	}
	if !end.After(start) {
		return apperr.Invalid("end_date", "must be after start_date")
	}
	return nil
}
