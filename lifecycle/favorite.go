package lifecycle

import (
	"context"
	"errors"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
)

// AddFavorite saves a property for the tenant. Adding twice returns the
// existing favorite.
func (m *Manager) AddFavorite(ctx context.Context, p policy.Principal, propertyID int64) (models.Favorite, error) {
	var favorite models.Favorite
	if err := m.authorize(p, policy.ActionAddFavorite, policy.Resource{}); err != nil {
		return favorite, err
	}

	property, err := m.db.Properties().FindByID(propertyID)
	if err != nil {
		return favorite, err
	}
	if !policy.Evaluate(p, policy.ActionViewProperty, policy.PropertyResource(property)).Allowed {
		return favorite, apperr.NotFound("property")
	}

	favorite, err = m.db.Favorites().Find(p.ID, propertyID)
	if err == nil || !apperr.IsNotFound(err) {
		return favorite, err
	}

	favorite = models.Favorite{TenantID: p.ID, PropertyID: propertyID}
	err = m.db.Favorites().Add(&favorite)
	var conflict *apperr.ConflictError
	if errors.As(err, &conflict) {
		// lost a race with a concurrent add of the same pair
		return m.db.Favorites().Find(p.ID, propertyID)
	}
	return favorite, err
}

func (m *Manager) RemoveFavorite(ctx context.Context, p policy.Principal, propertyID int64) error {
	if err := m.authorize(p, policy.ActionRemoveFavorite, policy.Resource{}); err != nil {
		return err
	}
	return m.db.Favorites().Remove(p.ID, propertyID)
}

func (m *Manager) ListFavorites(ctx context.Context, p policy.Principal) ([]models.Favorite, error) {
	if err := m.authorize(p, policy.ActionViewFavorites, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Favorites().ListByTenant(p.ID)
}
