package services

import (
	"context"
	"testing"
	"time"

	"gin-shareit/dto"
	"gin-shareit/infra"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db       *gorm.DB
	clock    *fixedClock
	users    IUserService
	items    IItemService
	bookings IBookingService
	requests IItemRequestService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := infra.NewTestDB(models.AutoMigrate)
	require.NoError(t, err)

	clock := &fixedClock{t: testNow}
	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	bookingRepository := repositories.NewBookingRepository(db)
	requestRepository := repositories.NewItemRequestRepository(db)
	commentRepository := repositories.NewCommentRepository(db)

	users := NewUserService(userRepository, cache.New(time.Minute, time.Minute))
	return &fixture{
		db:       db,
		clock:    clock,
		users:    users,
		items:    NewItemService(itemRepository, users, requestRepository, bookingRepository, commentRepository, clock),
		bookings: NewBookingService(bookingRepository, itemRepository, users, clock),
		requests: NewItemRequestService(requestRepository, itemRepository, users, clock),
	}
}

func (f *fixture) user(t *testing.T, name string) dto.UserResponse {
	t.Helper()
	u, err := f.users.Create(context.Background(), dto.CreateUserInput{Name: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return *u
}

func (f *fixture) item(t *testing.T, ownerID uint, name string, available bool) dto.ItemResponse {
	t.Helper()
	item, err := f.items.Create(context.Background(), ownerID, dto.CreateItemInput{
		Name:        name,
		Description: name + " description",
		Available:   &available,
	})
	require.NoError(t, err)
	return *item
}

// booking は状態を直接書き込む。開始が過去の予約も作れる
func (f *fixture) booking(t *testing.T, itemID, bookerID uint, start, end time.Time, status models.BookingStatus) uint {
	t.Helper()
	b := models.Booking{Start: start, End: end, ItemID: itemID, BookerID: bookerID, Status: status}
	require.NoError(t, f.db.Omit("Item", "Booker").Create(&b).Error)
	return b.ID
}

func apiCode(t *testing.T, err error) Code {
	t.Helper()
	require.Error(t, err)
	var api *APIError
	require.ErrorAs(t, err, &api)
	return api.Code
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func uintPtr(u uint) *uint    { return &u }
