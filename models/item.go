package models

import "time"

type Item struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	// bool に default を付けると false が INSERT されないので付けない
	Available bool `gorm:"not null"`
	OwnerID   uint `gorm:"not null;index"`
	Owner     User
	RequestID *uint        `gorm:"index"`
	Request   *ItemRequest `gorm:"constraint:OnDelete:SET NULL;"`
}
