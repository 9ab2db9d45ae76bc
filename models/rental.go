package models

import "time"

/************************************************
/**** MARK: RENTAL STATUS ****/
/************************************************/
const RENTAL_STATUS_PENDING = "pending"
const RENTAL_STATUS_ACTIVE = "active"
const RENTAL_STATUS_EXPIRED = "expired"
const RENTAL_STATUS_TERMINATED = "terminated"

// LiveRentalStatuses hold their property in "rented".
var LiveRentalStatuses = []string{RENTAL_STATUS_PENDING, RENTAL_STATUS_ACTIVE}

// Rental é o contrato de aluguel entre proprietário e inquilino.
// OwnerID é copiado do imóvel no momento da criação.
type Rental struct {
	ID              int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PropertyID      int64     `gorm:"not null;index" json:"property_id"`
	TenantID        int64     `gorm:"not null;index" json:"tenant_id"`
	OwnerID         int64     `gorm:"not null;index" json:"owner_id"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null;index" json:"end_date"`
	RentAmount      float64   `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	SecurityDeposit float64   `gorm:"type:decimal(10,2)" json:"security_deposit"`
	Status          string    `gorm:"not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (rental Rental) IsLive() bool {
	return rental.Status == RENTAL_STATUS_PENDING || rental.Status == RENTAL_STATUS_ACTIVE
}

func IsValidRentalStatus(status string) bool {
	switch status {
	case RENTAL_STATUS_PENDING, RENTAL_STATUS_ACTIVE, RENTAL_STATUS_EXPIRED, RENTAL_STATUS_TERMINATED:
		return true
	}
	return false
}
