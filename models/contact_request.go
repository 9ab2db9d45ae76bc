package models

import "time"

/************************************************
/**** MARK: CONTACT REQUEST STATUS ****/
/************************************************/
const CONTACT_STATUS_PENDING = "pending"
const CONTACT_STATUS_RESPONDED = "responded"
const CONTACT_STATUS_CLOSED = "closed"

const INQUIRY_TYPE_GENERAL = "general"

// ContactRequest é o pedido de contato de um inquilino sobre um imóvel.
type ContactRequest struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PropertyID    int64      `gorm:"not null;index" json:"property_id"`
	OwnerID       int64      `gorm:"not null;index" json:"owner_id"`
	TenantID      int64      `gorm:"not null;index" json:"tenant_id"`
	TenantName    string     `gorm:"not null" json:"tenant_name"`
	TenantEmail   string     `gorm:"not null" json:"tenant_email"`
	TenantPhone   string     `json:"tenant_phone"`
	Message       string     `gorm:"type:text;not null" json:"message"`
	PreferredDate *time.Time `json:"preferred_date"`
	InquiryType   string     `gorm:"not null;default:'general'" json:"inquiry_type"`
	Status        string     `gorm:"not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func IsValidContactStatus(status string) bool {
	switch status {
	case CONTACT_STATUS_PENDING, CONTACT_STATUS_RESPONDED, CONTACT_STATUS_CLOSED:
		return true
	}
	return false
}
