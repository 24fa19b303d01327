package model

import "time"

// DefaultRole is assigned when a user is created without a role.
const DefaultRole = "user"

// User is a marketplace account. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password      string    `json:"-" gorm:"size:255;not null"`
	WalletAddress *string   `json:"wallet_address" gorm:"size:255"`
	Role          *string   `json:"role" gorm:"size:50;default:'user'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserSummary is the user block returned alongside an auth token.
type UserSummary struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"wallet_address"`
	Role          *string `json:"role"`
}

// RoleName returns the role or an empty string when it was cleared.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return *u.Role
}

// Summary projects the user onto the fields returned by signup and login.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		WalletAddress: u.WalletAddress,
		Role:          u.Role,
	}
}
