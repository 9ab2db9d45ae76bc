package models

import "time"

// Favorite liga um inquilino a um imóvel salvo (par único).
type Favorite struct {
	ID         int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID   int64     `gorm:"not null;index;unique_index:ux_favorite_tenant_property" json:"tenant_id"`
	PropertyID int64     `gorm:"not null;index;unique_index:ux_favorite_tenant_property" json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}
