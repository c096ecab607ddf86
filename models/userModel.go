package models

import "gorm.io/gorm"

// Role levels. Lower is more privileged.
const (
	LevelAdmin    = 1
	LevelStaff    = 2
	LevelCustomer = 3
)

func IsValidLevel(level int) bool {
	return level == LevelAdmin || level == LevelStaff || level == LevelCustomer
}

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	Level     int    `json:"level" gorm:"default:3"`
}

type RegisterData struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the shape returned by the admin user listing.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Level     int    `json:"level"`
}
