package repositories

import (
	"errors"
	"strings"

	"gin-shareit/constants"

	"gorm.io/gorm"
)

// Page は from/size から求めたオフセット。Limit が 0 なら全件
type Page struct {
	Offset int
	Limit  int
}

// NewPage は from を含むページの先頭にオフセットを揃える
func NewPage(from, size int) Page {
	if size <= 0 {
		size = constants.DefaultSize
	}
	if from < 0 {
		from = constants.DefaultFrom
	}
	return Page{Offset: (from / size) * size, Limit: size}
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit <= 0 {
		return db
	}
	return db.Offset(p.Offset).Limit(p.Limit)
}

// isDuplicate はドライバごとの一意制約違反をまとめて判定する
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}
