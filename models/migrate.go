package models

import "gorm.io/gorm"

// AutoMigrate は外部キーの依存順にテーブルを作成する
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &ItemRequest{}, &Item{}, &Booking{}, &Comment{})
}
