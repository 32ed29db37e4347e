package repositories

import (
	"context"
	"time"

	"gin-shareit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingFilter は一覧取得の条件。BookerID か OwnerID のどちらかを指定する
type BookingFilter struct {
	BookerID uint
	OwnerID  uint
	State    models.BookingState
	Now      time.Time
}

type IBookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID uint) (*models.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter, page Page) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uint, from, to models.BookingStatus) (bool, error)
	FindLastForItems(ctx context.Context, itemIDs []uint, now time.Time) (map[uint]models.Booking, error)
	FindNextForItems(ctx context.Context, itemIDs []uint, now time.Time) (map[uint]models.Booking, error)
	ExistsFinished(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error)
}

// 直近・次回の予約として扱うステータス
var activeStatuses = []models.BookingStatus{models.StatusApproved, models.StatusWaiting}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) IBookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&booking)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(ctx, booking.ID)
}

func (r *BookingRepository) FindByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	result := r.preloaded(ctx).First(&booking, "bookings.id = ?", bookingID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &booking, nil
}

func (r *BookingRepository) FindAll(ctx context.Context, filter BookingFilter, page Page) ([]models.Booking, error) {
	query := r.preloaded(ctx)
	if filter.BookerID != 0 {
		query = query.Where("bookings.booker_id = ?", filter.BookerID)
	}
	if filter.OwnerID != 0 {
		query = query.Joins("JOIN items ON items.id = bookings.item_id").
			Where("items.owner_id = ?", filter.OwnerID)
	}
	query = applyState(query, filter.State, filter.Now)

	var bookings []models.Booking
	result := page.apply(query.Order(clause.OrderByColumn{
		Column: clause.Column{Table: "bookings", Name: "start_date"},
		Desc:   true,
	})).Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}
	return bookings, nil
}

// UpdateStatus は from の状態にある場合だけ更新する。更新できたかを返す
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uint, from, to models.BookingStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindLastForItems は now より前に始まった予約のうち終了が最も遅いものをアイテムごとに返す
func (r *BookingRepository) FindLastForItems(ctx context.Context, itemIDs []uint, now time.Time) (map[uint]models.Booking, error) {
	return r.firstPerItem(ctx, itemIDs, "start_date < ?", now, "end_date DESC")
}

// FindNextForItems は now より後に始まる予約のうち開始が最も早いものをアイテムごとに返す
func (r *BookingRepository) FindNextForItems(ctx context.Context, itemIDs []uint, now time.Time) (map[uint]models.Booking, error) {
	return r.firstPerItem(ctx, itemIDs, "start_date > ?", now, "start_date ASC")
}

func (r *BookingRepository) ExistsFinished(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, models.StatusApproved, now).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *BookingRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Owner").
		Preload("Booker")
}

func (r *BookingRepository) firstPerItem(ctx context.Context, itemIDs []uint, cond string, now time.Time, order string) (map[uint]models.Booking, error) {
	out := make(map[uint]models.Booking)
	if len(itemIDs) == 0 {
		return out, nil
	}
	var bookings []models.Booking
	result := r.db.WithContext(ctx).
		Where("item_id IN ? AND status IN ?", itemIDs, activeStatuses).
		Where(cond, now).
		Order(order).
		Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, b := range bookings {
		if _, ok := out[b.ItemID]; !ok {
			out[b.ItemID] = b
		}
	}
	return out, nil
}

func applyState(query *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		return query.Where("bookings.start_date < ? AND bookings.end_date > ?", now, now)
	case models.StatePast:
		return query.Where("bookings.end_date < ?", now)
	case models.StateFuture:
		return query.Where("bookings.start_date > ?", now)
	case models.StateWaiting, models.StateApproved, models.StateRejected, models.StateCanceled:
		return query.Where("bookings.status = ?", string(state))
	default:
		return query
	}
}
