// Package policy decides whether a principal may perform an action on a
// resource. Decisions are pure: nothing here touches storage, and callers
// must not mutate state before a decision is returned.
package policy

import (
	"renthub/apperr"
	"renthub/models"
)

type Action string

const (
	// admin
	ActionListUsers         Action = "list_users"
	ActionDeleteUser        Action = "delete_user"
	ActionChangeUserRole    Action = "change_user_role"
	ActionViewAllRentals    Action = "view_all_rentals"
	ActionViewAllProperties Action = "view_all_properties"

	// owner
	ActionCreateProperty          Action = "create_property"
	ActionUpdateProperty          Action = "update_property"
	ActionDeleteProperty          Action = "delete_property"
	ActionListOwnProperties       Action = "list_own_properties"
	ActionCreateRental            Action = "create_rental"
	ActionUpdateRental            Action = "update_rental"
	ActionDeleteRental            Action = "delete_rental"
	ActionViewOwnerRentals        Action = "view_owner_rentals"
	ActionRespondToContactRequest Action = "respond_to_contact_request"

	// tenant
	ActionAddFavorite          Action = "add_favorite"
	ActionRemoveFavorite       Action = "remove_favorite"
	ActionViewFavorites        Action = "view_favorites"
	ActionViewOwnRentals       Action = "view_own_rentals"
	ActionCreateContactRequest Action = "create_contact_request"
	ActionUpdateContactRequest Action = "update_contact_request"

	// any authenticated user
	ActionViewSelf            Action = "view_self"
	ActionChangePassword      Action = "change_password"
	ActionSendMessage         Action = "send_message"
	ActionViewMessages        Action = "view_messages"
	ActionViewContactRequests Action = "view_contact_requests"

	// anyone, including anonymous callers
	ActionListProperties       Action = "list_properties"
	ActionViewProperty         Action = "view_property"
	ActionSignup               Action = "signup"
	ActionLogin                Action = "login"
	ActionRequestPasswordReset Action = "request_password_reset"
	ActionRedeemPasswordReset  Action = "redeem_password_reset"
)

// Principal is the authenticated actor. The zero value is the anonymous caller.
type Principal struct {
	ID   int64
	Role string
}

func Anonymous() Principal { return Principal{} }

// PrincipalOf builds the principal for a loaded user row.
func PrincipalOf(user models.User) Principal {
	return Principal{ID: user.ID, Role: user.EffectiveRole()}
}

func (p Principal) IsAnonymous() bool { return p.ID == 0 }

func (p Principal) Is(role string) bool { return !p.IsAnonymous() && p.Role == role }

// Resource carries the attributes of the target that rules look at.
// OwnerID/TenantID are the parties of a property, rental or contact request;
// Role is the role of a target user; Status is the property status.
type Resource struct {
	OwnerID  int64
	TenantID int64
	Role     string
	Status   string
}

func PropertyResource(p models.Property) Resource {
	return Resource{OwnerID: p.OwnerID, Status: p.Status}
}

func RentalResource(r models.Rental) Resource {
	return Resource{OwnerID: r.OwnerID, TenantID: r.TenantID}
}

func ContactRequestResource(cr models.ContactRequest) Resource {
	return Resource{OwnerID: cr.OwnerID, TenantID: cr.TenantID}
}

func UserResource(u models.User) Resource {
	return Resource{Role: u.EffectiveRole()}
}

// Decision is the outcome of an evaluation.
type Decision struct {
	Allowed  bool
	Reason   apperr.Reason
	Expected string
}

var allow = Decision{Allowed: true}

func deny(reason apperr.Reason) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into a *apperr.PolicyError; nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &apperr.PolicyError{Reason: d.Reason, Expected: d.Expected}
}

// Evaluate runs the rule registered for the action.
func Evaluate(p Principal, action Action, r Resource) Decision {
	rule, ok := rules[action]
	if !ok {
		return deny(apperr.ReasonAccessDenied)
	}
	if !rule.public {
		if p.IsAnonymous() {
			return deny(apperr.ReasonUnauthenticated)
		}
		if !rule.admits(p.Role) {
			return Decision{Reason: apperr.ReasonRoleRequired, Expected: rule.roles[0]}
		}
	}
	if rule.check == nil {
		return allow
	}
	return rule.check(p, r)
}

// Authorize is Evaluate reduced to an error.
func Authorize(p Principal, action Action, r Resource) error {
	return Evaluate(p, action, r).Err()
}
