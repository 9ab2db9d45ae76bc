package lifecycle

import (
	"context"
	"strings"
	"time"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
	"renthub/store"
)

type ContactRequestInput struct {
	PropertyID    int64      `json:"property_id"`
	Message       string     `json:"message"`
	Phone         string     `json:"phone"`
	PreferredDate *time.Time `json:"preferred_date"`
	InquiryType   string     `json:"inquiry_type"`
}

// CreateContactRequest records a tenant inquiry about a visible property.
// Name and e-mail are copied from the tenant's account.
func (m *Manager) CreateContactRequest(ctx context.Context, p policy.Principal, in ContactRequestInput) (models.ContactRequest, error) {
	var request models.ContactRequest
	if err := m.authorize(p, policy.ActionCreateContactRequest, policy.Resource{}); err != nil {
		return request, err
	}
	if in.PropertyID == 0 {
		return request, apperr.Invalid("property_id", "is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return request, apperr.Invalid("message", "is required")
	}

	property, err := m.db.Properties().FindByID(in.PropertyID)
	if err != nil {
		return request, err
	}
	if !policy.Evaluate(p, policy.ActionViewProperty, policy.PropertyResource(property)).Allowed {
		return request, apperr.NotFound("property")
	}
	tenant, err := m.db.Users().FindByID(p.ID)
	if err != nil {
		return request, err
	}

	inquiry := in.InquiryType
	if inquiry == "" {
		inquiry = models.INQUIRY_TYPE_GENERAL
	}
	phone := in.Phone
	if phone == "" {
		phone = tenant.Phone
	}
	request = models.ContactRequest{
		PropertyID:    property.ID,
		OwnerID:       property.OwnerID,
		TenantID:      tenant.ID,
		TenantName:    tenant.Name,
		TenantEmail:   tenant.Email,
		TenantPhone:   phone,
		Message:       strings.TrimSpace(in.Message),
		PreferredDate: in.PreferredDate,
		InquiryType:   inquiry,
		Status:        models.CONTACT_STATUS_PENDING,
	}
	if err := m.db.ContactRequests().Create(&request); err != nil {
		return request, err
	}
	return request, nil
}

// UpdateContactRequestStatus lets either party move the request. Owners
// respond to requests about their properties; tenants update their own.
// Every status can be re-entered.
func (m *Manager) UpdateContactRequestStatus(ctx context.Context, p policy.Principal, id int64, status string) error {
	return m.db.Transaction(ctx, func(tx store.Store) error {
		request, err := tx.ContactRequests().FindByID(id)
		if err != nil {
			return err
		}
		action := policy.ActionUpdateContactRequest
		if p.Is(models.ROLE_OWNER) {
			action = policy.ActionRespondToContactRequest
		}
		if err := m.authorize(p, action, policy.ContactRequestResource(request)); err != nil {
			return err
		}
		if !models.IsValidContactStatus(status) {
			return apperr.Invalid("status", "invalid contact request status")
		}
		if status == request.Status {
			return nil
		}
		return tx.ContactRequests().UpdateStatus(id, status)
	})
}

func (m *Manager) ListContactRequests(ctx context.Context, p policy.Principal) ([]models.ContactRequest, error) {
	scope, err := policy.ContactRequestScope(p)
	if err != nil {
		return nil, err
	}
	return m.db.ContactRequests().List(store.ContactRequestFilter{OwnerID: scope.OwnerID, TenantID: scope.TenantID})
}
