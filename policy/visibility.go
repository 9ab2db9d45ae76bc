package policy

import "renthub/models"

// Scope restricts a listing to the rows a principal may see.
// All wins over the party ids; a zero id means "no restriction on that column".
type Scope struct {
	All      bool
	OwnerID  int64
	TenantID int64
}

// RentalScope authorizes a rental listing and returns its filter.
// Admins see everything, owners the rentals of their properties,
// tenants their own agreements.
func RentalScope(p Principal) (Scope, error) {
	switch {
	case p.Is(models.ROLE_ADMIN):
		return Scope{All: true}, Authorize(p, ActionViewAllRentals, Resource{})
	case p.Is(models.ROLE_OWNER):
		return Scope{OwnerID: p.ID}, Authorize(p, ActionViewOwnerRentals, Resource{})
	default:
		return Scope{TenantID: p.ID}, Authorize(p, ActionViewOwnRentals, Resource{})
	}
}

// ContactRequestScope authorizes a contact request listing: owners see
// requests about their properties, tenants the ones they sent.
func ContactRequestScope(p Principal) (Scope, error) {
	if err := Authorize(p, ActionViewContactRequests, Resource{}); err != nil {
		return Scope{}, err
	}
	if p.Role == models.ROLE_OWNER {
		return Scope{OwnerID: p.ID}, nil
	}
	return Scope{TenantID: p.ID}, nil
}

// PropertyStatuses returns the statuses visible in the public listing.
// A nil slice means every status is visible.
func PropertyStatuses(p Principal) []string {
	if Evaluate(p, ActionViewAllProperties, Resource{}).Allowed {
		return nil
	}
	return []string{models.PROPERTY_STATUS_AVAILABLE}
}
