package entity

import (
	"time"

	"gorm.io/datatypes"
)

type SecurityAction string

const (
	SignupSuccess SecurityAction = "signup_success"
	LoginSuccess  SecurityAction = "login_success"
	LoginFailed   SecurityAction = "login_failed"
	Logout        SecurityAction = "logout"
	PasswordReset SecurityAction = "password_reset"
	StatusChanged SecurityAction = "status_changed"
	RoleChanged   SecurityAction = "role_changed"
)

type SecurityLog struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	UserID *string `gorm:"column:user_id;type:text;index"`

	IPAddress *string        `gorm:"type:varchar(45)"`
	Action    SecurityAction `gorm:"type:text;not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
