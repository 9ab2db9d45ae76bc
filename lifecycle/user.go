package lifecycle

import (
	"context"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
	"renthub/store"
)

func (m *Manager) ListUsers(ctx context.Context, p policy.Principal) ([]models.User, error) {
	if err := m.authorize(p, policy.ActionListUsers, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Users().List()
}

// DeleteUser removes a non-admin account with everything it owns: its
// properties (with their own cascade), its rentals as a tenant (freeing the
// rented properties), favorites, contact requests, messages and reset codes.
func (m *Manager) DeleteUser(ctx context.Context, p policy.Principal, id int64) error {
	var keys []string
	err := m.db.Transaction(ctx, func(tx store.Store) error {
		target, err := tx.Users().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionDeleteUser, policy.UserResource(target)); err != nil {
			return err
		}

		propertyIDs, err := tx.Properties().IDsByOwner(id)
		if err != nil {
			return err
		}
		for _, propertyID := range propertyIDs {
			removed, err := cascadeProperty(tx, propertyID)
			if err != nil {
				return err
			}
			keys = append(keys, removed...)
		}

		rentals, err := tx.Rentals().List(store.RentalFilter{TenantID: id})
		if err != nil {
			return err
		}
		for _, rental := range rentals {
			if err := tx.Rentals().Delete(rental.ID); err != nil {
				return err
			}
			if err := releaseProperty(tx, rental.PropertyID); err != nil {
				return err
			}
		}

		steps := []func(int64) error{
			tx.Favorites().DeleteByTenant,
			tx.ContactRequests().DeleteByUser,
			tx.Messages().DeleteByUser,
			tx.ResetCodes().DeleteByUser,
			tx.Users().Delete,
		}
		for _, step := range steps {
			if err := step(id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	m.removeObjects(ctx, keys)
	return nil
}

// ChangeUserRole sets the role of a non-admin account; the legacy is_admin
// flag follows the role.
func (m *Manager) ChangeUserRole(ctx context.Context, p policy.Principal, id int64, role string) error {
	if !models.IsValidRole(role) {
		return apperr.Invalid("role", "invalid role")
	}
	return m.db.Transaction(ctx, func(tx store.Store) error {
		target, err := tx.Users().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionChangeUserRole, policy.UserResource(target)); err != nil {
			return err
		}
		if target.Role == role {
			return nil
		}
		if err := guardRoleChange(tx, target, role); err != nil {
			return err
		}
		return tx.Users().UpdateRole(id, role)
	})
}

// guardRoleChange refuses to take the owner role from a user who still owns
// properties, or the tenant role from one holding a live rental: rentals and
// contact requests are only actionable by a party with that role.
func guardRoleChange(tx store.Store, target models.User, role string) error {
	switch target.EffectiveRole() {
	case models.ROLE_OWNER:
		if role == models.ROLE_OWNER {
			return nil
		}
		owned, err := tx.Properties().IDsByOwner(target.ID)
		if err != nil {
			return err
		}
		if len(owned) > 0 {
			return apperr.Conflict("user %d still owns %d properties", target.ID, len(owned))
		}
	case models.ROLE_TENANT:
		if role == models.ROLE_TENANT {
			return nil
		}
		live, err := tx.Rentals().List(store.RentalFilter{TenantID: target.ID, Statuses: models.LiveRentalStatuses})
		if err != nil {
			return err
		}
		if len(live) > 0 {
			return apperr.Conflict("user %d has a live rental", target.ID)
		}
	}
	return nil
}
