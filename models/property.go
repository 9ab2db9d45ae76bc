package models

import "time"

/************************************************
/**** MARK: PROPERTY STATUS ****/
/************************************************/
const PROPERTY_STATUS_AVAILABLE = "available"
const PROPERTY_STATUS_RENTED = "rented"
const PROPERTY_STATUS_MAINTENANCE = "maintenance"
const PROPERTY_STATUS_PENDING_APPROVAL = "pending_approval"

// Property é um imóvel anunciado por um proprietário.
// Status "rented" é controlado pelo ciclo de vida dos aluguéis.
type Property struct {
	ID               int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	OwnerID          int64           `gorm:"not null;index" json:"owner_id"`
	Title            string          `gorm:"not null" json:"title" form:"title"`
	Description      string          `gorm:"type:text" json:"description" form:"description"`
	PropertyType     string          `gorm:"not null" json:"property_type" form:"property_type"`
	Bedrooms         int             `json:"bedrooms" form:"bedrooms"`
	Bathrooms        int             `json:"bathrooms" form:"bathrooms"`
	SquareFeet       int             `json:"square_feet" form:"square_feet"`
	RentAmount       float64         `gorm:"type:decimal(10,2);not null" json:"rent_amount" form:"rent_amount"`
	SecurityDeposit  float64         `gorm:"type:decimal(10,2)" json:"security_deposit" form:"security_deposit"`
	LeaseDuration    string          `json:"lease_duration" form:"lease_duration"`
	AvailableDate    *time.Time      `json:"available_date" form:"available_date"`
	Address          string          `gorm:"not null" json:"address" form:"address"`
	City             string          `gorm:"not null;index" json:"city" form:"city"`
	Neighborhood     string          `json:"neighborhood" form:"neighborhood"`
	Latitude         float64         `json:"latitude" form:"latitude"`
	Longitude        float64         `json:"longitude" form:"longitude"`
	Furnished        bool            `gorm:"not null;default:false" json:"furnished" form:"furnished"`
	ParkingAvailable bool            `gorm:"not null;default:false" json:"parking_available" form:"parking_available"`
	PetPolicy        string          `json:"pet_policy" form:"pet_policy"`
	SmokingPolicy    string          `json:"smoking_policy" form:"smoking_policy"`
	Amenities        string          `gorm:"type:text" json:"amenities" form:"amenities"`       // JSON array
	ContactInfo      string          `gorm:"type:text" json:"contact_info" form:"contact_info"` // JSON object
	Status           string          `gorm:"not null;default:'available';index" json:"status" form:"status"`
	Images           []PropertyImage `gorm:"-" json:"images,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (property Property) MissingFields() string {
	if property.Title == "" {
		return "title"
	} else if property.PropertyType == "" {
		return "property_type"
	} else if property.Address == "" {
		return "address"
	} else if property.City == "" {
		return "city"
	} else if property.RentAmount <= 0 {
		return "rent_amount"
	}
	return ""
}

func IsValidPropertyStatus(status string) bool {
	switch status {
	case PROPERTY_STATUS_AVAILABLE, PROPERTY_STATUS_RENTED, PROPERTY_STATUS_MAINTENANCE, PROPERTY_STATUS_PENDING_APPROVAL:
		return true
	}
	return false
}
