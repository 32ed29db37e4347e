package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout はタイムゾーン無しの日時（例: 2024-05-01T10:00:00）
const DateTimeLayout = "2006-01-02T15:04:05"

var acceptedLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// DateTime はゾーン無し日時をサーバーのローカルタイムとして扱う
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q, expected %s", s, DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Local().Format(DateTimeLayout) + `"`), nil
}
