// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the public identity
// other users address questions to.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Username is the public handle questions are addressed to.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Image is an optional URL to the user's avatar.
	Image string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Profile is the public projection of a User.
// It is built without the credential field so a password hash can
// never leak through serialization.
type Profile struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Image:    u.Image,
	}
}
