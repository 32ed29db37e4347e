package models

import "time"

// ItemRequest はカタログに無いアイテムを求めるリクエスト
type ItemRequest struct {
	ID          uint      `gorm:"primarykey"`
	Description string    `gorm:"not null"`
	RequestorID uint      `gorm:"not null;index"`
	Requestor   User      `gorm:"constraint:OnDelete:CASCADE;"`
	Created     time.Time `gorm:"not null;index"`
}
