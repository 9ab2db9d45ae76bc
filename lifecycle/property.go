package lifecycle

import (
	"context"
	"io"
	"strings"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
	"renthub/store"
)

// GetProperty returns a property with its images. Properties the caller may
// not see are reported as not found.
func (m *Manager) GetProperty(ctx context.Context, p policy.Principal, id int64) (models.Property, error) {
	property, err := m.db.Properties().FindByID(id)
	if err != nil {
		return property, err
	}
	if !policy.Evaluate(p, policy.ActionViewProperty, policy.PropertyResource(property)).Allowed {
		return models.Property{}, apperr.NotFound("property")
	}
	images, err := m.db.PropertyImages().ListByProperty(id)
	if err != nil {
		return property, err
	}
	property.Images = images
	return property, nil
}

// ListProperties is the public search. Non-admins only ever see available
// properties whatever statuses the filter asks for.
func (m *Manager) ListProperties(ctx context.Context, p policy.Principal, filter store.PropertyFilter) ([]models.Property, error) {
	if err := m.authorize(p, policy.ActionListProperties, policy.Resource{}); err != nil {
		return nil, err
	}
	if visible := policy.PropertyStatuses(p); visible != nil {
		filter.Statuses = visible
	}
	return m.db.Properties().Search(filter)
}

// ListAllProperties is the admin overview; the filter is applied as given.
func (m *Manager) ListAllProperties(ctx context.Context, p policy.Principal, filter store.PropertyFilter) ([]models.Property, error) {
	if err := m.authorize(p, policy.ActionViewAllProperties, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Properties().Search(filter)
}

func (m *Manager) ListOwnProperties(ctx context.Context, p policy.Principal) ([]models.Property, error) {
	if err := m.authorize(p, policy.ActionListOwnProperties, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Properties().Search(store.PropertyFilter{OwnerID: p.ID})
}

func (m *Manager) CreateProperty(ctx context.Context, p policy.Principal, property models.Property) (models.Property, error) {
	if err := m.authorize(p, policy.ActionCreateProperty, policy.Resource{}); err != nil {
		return property, err
	}
	if field := property.MissingFields(); field != "" {
		return property, apperr.Invalid(field, "is required")
	}
	if property.Status == "" {
		property.Status = models.PROPERTY_STATUS_AVAILABLE
	}
	if err := checkManualStatus(property.Status); err != nil {
		return property, err
	}

	property.ID = 0
	property.OwnerID = p.ID
	property.Images = nil
	if err := m.db.Properties().Create(&property); err != nil {
		return property, err
	}
	return property, nil
}

// UpdateProperty replaces the editable fields of a property. A non-empty
// Status in changes goes through the same guard as UpdatePropertyStatus.
func (m *Manager) UpdateProperty(ctx context.Context, p policy.Principal, id int64, changes models.Property) (models.Property, error) {
	var updated models.Property
	err := m.db.Transaction(ctx, func(tx store.Store) error {
		current, err := tx.Properties().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionUpdateProperty, policy.PropertyResource(current)); err != nil {
			return err
		}
		if field := changes.MissingFields(); field != "" {
			return apperr.Invalid(field, "is required")
		}

		status := current.Status
		if changes.Status != "" && changes.Status != current.Status {
			if err := guardStatusChange(tx, current, changes.Status); err != nil {
				return err
			}
			status = changes.Status
		}

		changes.ID = current.ID
		changes.OwnerID = current.OwnerID
		changes.Status = status
		changes.CreatedAt = current.CreatedAt
		changes.Images = nil
		if err := tx.Properties().Update(&changes); err != nil {
			return err
		}
		updated = changes
		return nil
	})
	return updated, err
}

// UpdatePropertyStatus is the owner's manual status edit. "rented" is only
// reachable through rentals, and no manual change is accepted while a live
// rental holds the property.
func (m *Manager) UpdatePropertyStatus(ctx context.Context, p policy.Principal, id int64, status string) error {
	return m.db.Transaction(ctx, func(tx store.Store) error {
		current, err := tx.Properties().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionUpdateProperty, policy.PropertyResource(current)); err != nil {
			return err
		}
		if !models.IsValidPropertyStatus(status) {
			return apperr.Invalid("status", "invalid property status")
		}
		if status == current.Status {
			return nil
		}
		if err := guardStatusChange(tx, current, status); err != nil {
			return err
		}
		return tx.Properties().UpdateStatus(id, status)
	})
}

func checkManualStatus(status string) error {
	if !models.IsValidPropertyStatus(status) {
		return apperr.Invalid("status", "invalid property status")
	}
	if status == models.PROPERTY_STATUS_RENTED {
		return apperr.Invalid("status", "rented is set by creating a rental")
	}
	return nil
}

func guardStatusChange(tx store.Store, current models.Property, status string) error {
	if err := checkManualStatus(status); err != nil {
		return err
	}
	live, err := tx.Rentals().CountLive(current.ID)
	if err != nil {
		return err
	}
	if live > 0 {
		return apperr.Conflict("property %d has a live rental", current.ID)
	}
	return nil
}

// DeleteProperty removes the property and everything hanging off it.
func (m *Manager) DeleteProperty(ctx context.Context, p policy.Principal, id int64) error {
	var keys []string
	err := m.db.Transaction(ctx, func(tx store.Store) error {
		current, err := tx.Properties().FindByID(id)
		if err != nil {
			return err
		}
		if err := m.authorize(p, policy.ActionDeleteProperty, policy.PropertyResource(current)); err != nil {
			return err
		}
		keys, err = cascadeProperty(tx, id)
		return err
	})
	if err != nil {
		return err
	}
	m.removeObjects(ctx, keys)
	return nil
}

// cascadeProperty deletes a property and its dependents inside tx. Messages
// about the property are kept and only lose the reference. It returns the
// object keys of the deleted images.
func cascadeProperty(tx store.Store, propertyID int64) ([]string, error) {
	images, err := tx.PropertyImages().ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(images))
	for _, image := range images {
		keys = append(keys, image.ObjectKey)
	}

	steps := []func(int64) error{
		tx.PropertyImages().DeleteByProperty,
		tx.Favorites().DeleteByProperty,
		tx.Rentals().DeleteByProperty,
		tx.ContactRequests().DeleteByProperty,
		tx.Messages().DetachProperty,
		tx.Properties().Delete,
	}
	for _, step := range steps {
		if err := step(propertyID); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// ImageUpload is one file posted for a property.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Caption     string
	IsPrimary   bool
}

func (m *Manager) AddPropertyImage(ctx context.Context, p policy.Principal, propertyID int64, upload ImageUpload) (models.PropertyImage, error) {
	var image models.PropertyImage

	property, err := m.db.Properties().FindByID(propertyID)
	if err != nil {
		return image, err
	}
	if err := m.authorize(p, policy.ActionUpdateProperty, policy.PropertyResource(property)); err != nil {
		return image, err
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return image, apperr.Invalid("image", "must be an image")
	}
	if m.images == nil {
		return image, apperr.ErrUnavailable
	}

	existing, err := m.db.PropertyImages().ListByProperty(propertyID)
	if err != nil {
		return image, err
	}

	key, url, err := m.images.Upload(ctx, propertyID, upload.Filename, upload.ContentType, upload.Body)
	if err != nil {
		return image, apperr.Storage("upload image", err)
	}

	image = models.PropertyImage{
		PropertyID: propertyID,
		ImageURL:   url,
		ObjectKey:  key,
		Caption:    upload.Caption,
		IsPrimary:  upload.IsPrimary || len(existing) == 0,
		SortOrder:  len(existing),
	}
	if err := m.db.PropertyImages().Create(&image); err != nil {
		m.removeObjects(ctx, []string{key})
		return image, err
	}
	return image, nil
}
