package models

import "time"

// ResetCode é o código temporário do fluxo "esqueci minha senha".
// Guardamos apenas o HASH do código, nunca o código em texto puro.
type ResetCode struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	CodeHash  string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (rc ResetCode) IsExpired(now time.Time) bool {
	return now.After(rc.ExpiresAt)
}
