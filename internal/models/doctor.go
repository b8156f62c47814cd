package models

import "time"

type Doctor struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`

	// expediente: "HH:MM", WorkStart < WorkEnd
	WorkStart       string `gorm:"size:5" json:"workStart"`
	WorkEnd         string `gorm:"size:5" json:"workEnd"`
	SlotDurationMin int    `gorm:"default:30" json:"slotDuration"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
