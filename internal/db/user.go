package db

import "gorm.io/gorm"

// User is an administrator account. Passwords are stored as bcrypt hashes.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}
