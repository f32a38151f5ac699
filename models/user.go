package models

import (
	"time"
)

// User represents a registered account. PasswordHash is never serialized
// and never holds the plaintext.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	FirstName    string     `gorm:"not null" json:"first_name" form:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name" form:"last_name"`
	Username     string     `gorm:"not null;unique_index" json:"username" form:"username"`
	Email        string     `gorm:"not null;unique_index" json:"email" form:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	AboutMe      string     `json:"about_me" form:"about_me"`
	Phone        string     `gorm:"default:''" json:"phone" form:"phone"`
	LastSeen     *time.Time `json:"last_seen"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// TwoFactorEnabled reports whether the user completed phone verification.
func (u User) TwoFactorEnabled() bool {
	return u.Phone != ""
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
