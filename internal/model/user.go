package model

import "gorm.io/gorm"

// User is an operator account for the planning backend.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"size:16;not null;default:Viewer"`
}
