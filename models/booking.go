package models

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       uint          `gorm:"primarykey"`
	Start    time.Time     `gorm:"column:start_date;not null;index"`
	End      time.Time     `gorm:"column:end_date;not null"`
	ItemID   uint          `gorm:"not null;index"`
	Item     Item          `gorm:"constraint:OnDelete:CASCADE;"`
	BookerID uint          `gorm:"not null;index"`
	Booker   User          `gorm:"constraint:OnDelete:CASCADE;"`
	Status   BookingStatus `gorm:"type:varchar(20);not null"`
}

// BookingState は予約一覧の絞り込み条件
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateApproved BookingState = "APPROVED"
	StateRejected BookingState = "REJECTED"
	StateCanceled BookingState = "CANCELED"
)

// ParseBookingState は大文字の状態名のみ受け付ける
func ParseBookingState(s string) (BookingState, bool) {
	switch st := BookingState(s); st {
	case StateAll, StateCurrent, StatePast, StateFuture,
		StateWaiting, StateApproved, StateRejected, StateCanceled:
		return st, true
	}
	return "", false
}
