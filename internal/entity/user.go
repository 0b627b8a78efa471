package entity

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User.Status is true when the account has been disabled by an admin.
type User struct {
	ID             string   `gorm:"type:text;primaryKey"`
	Email          string   `gorm:"type:text;uniqueIndex;not null"`
	Name           string   `gorm:"type:text;not null"`
	PhoneNo        string   `gorm:"column:phone_no;type:text;uniqueIndex;not null"`
	Role           UserRole `gorm:"type:role;default:'user';not null"`
	Status         bool     `gorm:"not null;default:false"`
	HashedPassword *string  `gorm:"type:text"`
	GoogleID       *string  `gorm:"column:google_id;type:text;uniqueIndex"`
	PhotoURL       *string  `gorm:"column:photo_url;type:text"`

	Sessions []Session
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// CanManageInventory reports whether the user may create, update or delete
// medicines: any enabled account whose role is above plain "user".
func (u *User) CanManageInventory() bool {
	return u.Role != UserRoleUser && !u.Status
}
