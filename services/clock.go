package services

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewClock は UTC の現在時刻を返す Clock
func NewClock() Clock { return systemClock{} }
