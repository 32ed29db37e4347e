package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primarykey"`
	Text     string    `gorm:"not null"`
	ItemID   uint      `gorm:"not null;index"`
	Item     Item      `gorm:"constraint:OnDelete:CASCADE;"`
	AuthorID uint      `gorm:"not null"`
	Author   User      `gorm:"constraint:OnDelete:CASCADE;"`
	Created  time.Time `gorm:"not null"`
}
