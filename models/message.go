package models

import "time"

// Message é uma mensagem direta entre dois usuários, opcionalmente sobre um imóvel.
type Message struct {
	ID          int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	SenderID    int64     `gorm:"not null;index" json:"sender_id"`
	RecipientID int64     `gorm:"not null;index" json:"recipient_id"`
	Subject     string    `gorm:"not null" json:"subject"`
	Body        string    `gorm:"column:message;type:text;not null" json:"message"`
	PropertyID  *int64    `gorm:"index" json:"property_id"`
	InquiryType string    `gorm:"not null;default:'general'" json:"inquiry_type"`
	CreatedAt   time.Time `json:"created_at"`
}
