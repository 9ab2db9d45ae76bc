package policy

import (
	"renthub/apperr"
	"renthub/models"
)

type rule struct {
	// public rules are evaluated for anonymous callers too; roles is ignored.
	public bool
	// roles admitted, the first one is reported as the expected role on mismatch.
	roles []string
	check func(Principal, Resource) Decision
}

func (r rule) admits(role string) bool {
	for _, candidate := range r.roles {
		if candidate == role {
			return true
		}
	}
	return false
}

var (
	adminOnly      = []string{models.ROLE_ADMIN}
	ownerOnly      = []string{models.ROLE_OWNER}
	tenantOnly     = []string{models.ROLE_TENANT}
	parties        = []string{models.ROLE_OWNER, models.ROLE_TENANT}
	authenticated  = []string{models.ROLE_TENANT, models.ROLE_OWNER, models.ROLE_ADMIN}
	publicEndpoint = rule{public: true}
)

var rules = map[Action]rule{
	ActionListUsers:         {roles: adminOnly},
	ActionDeleteUser:        {roles: adminOnly, check: targetNotAdmin(apperr.ReasonCannotDeleteAdmin)},
	ActionChangeUserRole:    {roles: adminOnly, check: targetNotAdmin(apperr.ReasonAdminProtected)},
	ActionViewAllRentals:    {roles: adminOnly},
	ActionViewAllProperties: {roles: adminOnly},

	ActionCreateProperty:          {roles: ownerOnly},
	ActionListOwnProperties:       {roles: ownerOnly},
	ActionUpdateProperty:          {roles: ownerOnly, check: ownsResource},
	ActionDeleteProperty:          {roles: ownerOnly, check: ownsResource},
	ActionCreateRental:            {roles: ownerOnly, check: ownsResource},
	ActionUpdateRental:            {roles: ownerOnly, check: ownsResource},
	ActionDeleteRental:            {roles: ownerOnly, check: ownsResource},
	ActionViewOwnerRentals:        {roles: ownerOnly},
	ActionRespondToContactRequest: {roles: ownerOnly, check: ownsResource},

	ActionAddFavorite:          {roles: tenantOnly},
	ActionRemoveFavorite:       {roles: tenantOnly},
	ActionViewFavorites:        {roles: tenantOnly},
	ActionViewOwnRentals:       {roles: tenantOnly},
	ActionCreateContactRequest: {roles: tenantOnly},
	ActionUpdateContactRequest: {roles: tenantOnly, check: isTenantParty},

	ActionViewSelf:            {roles: authenticated},
	ActionChangePassword:      {roles: authenticated},
	ActionSendMessage:         {roles: authenticated},
	ActionViewMessages:        {roles: authenticated},
	ActionViewContactRequests: {roles: parties},

	ActionListProperties:       publicEndpoint,
	ActionViewProperty:         {public: true, check: canSeeProperty},
	ActionSignup:               publicEndpoint,
	ActionLogin:                publicEndpoint,
	ActionRequestPasswordReset: publicEndpoint,
	ActionRedeemPasswordReset:  publicEndpoint,
}

func ownsResource(p Principal, r Resource) Decision {
	if r.OwnerID != p.ID {
		return deny(apperr.ReasonNotOwner)
	}
	return allow
}

func isTenantParty(p Principal, r Resource) Decision {
	if r.TenantID != p.ID {
		return deny(apperr.ReasonAccessDenied)
	}
	return allow
}

func targetNotAdmin(reason apperr.Reason) func(Principal, Resource) Decision {
	return func(_ Principal, r Resource) Decision {
		if r.Role == models.ROLE_ADMIN {
			return deny(reason)
		}
		return allow
	}
}

func canSeeProperty(p Principal, r Resource) Decision {
	switch {
	case r.Status == models.PROPERTY_STATUS_AVAILABLE:
		return allow
	case p.Is(models.ROLE_ADMIN):
		return allow
	case p.Is(models.ROLE_OWNER) && r.OwnerID == p.ID:
		return allow
	}
	return deny(apperr.ReasonAccessDenied)
}
