package models

import "time"

// PropertyImage aponta para um objeto no bucket de imagens.
type PropertyImage struct {
	ID         int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PropertyID int64     `gorm:"not null;index" json:"property_id"`
	ImageURL   string    `gorm:"column:image_url;not null" json:"image_url"`
	ObjectKey  string    `gorm:"column:object_key;not null" json:"-"`
	Caption    string    `json:"caption"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"is_primary"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}
