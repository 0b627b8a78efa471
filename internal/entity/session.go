package entity

import "time"

type Session struct {
	ID     string `gorm:"type:text;primaryKey"`
	UserID string `gorm:"column:user_id;type:text;not null;index"`
	User   User   `gorm:"constraint:OnDelete:CASCADE"`

	ExpiresAt time.Time `gorm:"not null"`
}
