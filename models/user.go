package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name  string `gorm:"column:name_user;not null"`
	Email string `gorm:"not null;uniqueIndex"`
	Items []Item `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}
