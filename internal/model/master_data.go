package model

import (
	"gorm.io/gorm"
)

type ShiftType struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	ShortName string `json:"short_name" gorm:"size:8"`
	Color     string `json:"color" gorm:"size:16"`      // Background, e.g. #ffcc00
	TextColor string `json:"text_color" gorm:"size:16"` // Foreground
}
