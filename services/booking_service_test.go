package services

import (
	"context"
	"testing"
	"time"

	"gin-shareit/dto"
	"gin-shareit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingInput(itemID uint, start, end time.Time) dto.CreateBookingInput {
	return dto.CreateBookingInput{ItemID: itemID, Start: dto.NewDateTime(start), End: dto.NewDateTime(end)}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner")
	booker := f.user(t, "booker")
	item := f.item(t, owner.ID, "drill", true)
	hidden := f.item(t, owner.ID, "saw", false)
	start, end := testNow.Add(time.Hour), testNow.Add(2*time.Hour)

	booking, err := f.bookings.Create(ctx, booker.ID, bookingInput(item.ID, start, end))
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, booking.Status)
	assert.Equal(t, item.ID, booking.Item.ID)
	assert.Equal(t, dto.UserShortResponse{ID: booker.ID, Name: "booker"}, booking.Booker)
	assert.True(t, start.Equal(booking.Start.Time))

	cases := []struct {
		name   string
		userID uint
		input  dto.CreateBookingInput
		code   Code
	}{
		{"unknown item", booker.ID, bookingInput(999, start, end), CodeNotFound},
		{"unknown booker", 999, bookingInput(item.ID, start, end), CodeNotFound},
		{"unavailable item", booker.ID, bookingInput(hidden.ID, start, end), CodeInvalidArgument},
		{"owner books own item", owner.ID, bookingInput(item.ID, start, end), CodeNotFound},
		{"end before start", booker.ID, bookingInput(item.ID, end, start), CodeInvalidArgument},
		{"start equals end", booker.ID, bookingInput(item.ID, start, start), CodeInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.bookings.Create(ctx, tc.userID, tc.input)
			assert.Equal(t, tc.code, apiCode(t, err))
		})
	}
}

func TestBookingService_Approve(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner")
	booker := f.user(t, "booker")
	item := f.item(t, owner.ID, "drill", true)

	created, err := f.bookings.Create(ctx, booker.ID, bookingInput(item.ID, testNow.Add(time.Hour), testNow.Add(2*time.Hour)))
	require.NoError(t, err)

	_, err = f.bookings.Approve(ctx, booker.ID, created.ID, true)
	assert.Equal(t, CodeNotFound, apiCode(t, err))

	approved, err := f.bookings.Approve(ctx, owner.ID, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	_, err = f.bookings.Approve(ctx, owner.ID, created.ID, false)
	assert.Equal(t, CodeInvalidArgument, apiCode(t, err))

	_, err = f.bookings.Approve(ctx, owner.ID, 999, true)
	assert.Equal(t, CodeNotFound, apiCode(t, err))

	other, err := f.bookings.Create(ctx, booker.ID, bookingInput(item.ID, testNow.Add(3*time.Hour), testNow.Add(4*time.Hour)))
	require.NoError(t, err)
	rejected, err := f.bookings.Approve(ctx, owner.ID, other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
}

func TestBookingService_FindByIDVisibleToBookerAndOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner")
	booker := f.user(t, "booker")
	stranger := f.user(t, "stranger")
	item := f.item(t, owner.ID, "drill", true)
	id := f.booking(t, item.ID, booker.ID, testNow.Add(time.Hour), testNow.Add(2*time.Hour), models.StatusWaiting)

	for _, userID := range []uint{owner.ID, booker.ID} {
		b, err := f.bookings.FindByID(ctx, userID, id)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID)
	}

	_, err := f.bookings.FindByID(ctx, stranger.ID, id)
	assert.Equal(t, CodeNotFound, apiCode(t, err))
}

func TestBookingService_Lists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.user(t, "owner")
	booker := f.user(t, "booker")
	item := f.item(t, owner.ID, "drill", true)

	past := f.booking(t, item.ID, booker.ID, testNow.Add(-48*time.Hour), testNow.Add(-24*time.Hour), models.StatusApproved)
	future := f.booking(t, item.ID, booker.ID, testNow.Add(24*time.Hour), testNow.Add(48*time.Hour), models.StatusWaiting)

	all, err := f.bookings.FindForBooker(ctx, booker.ID, models.StateAll, dto.PageQuery{Size: 10})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, future, all[0].ID)
	assert.Equal(t, past, all[1].ID)

	owned, err := f.bookings.FindForOwner(ctx, owner.ID, models.StatePast, dto.PageQuery{Size: 10})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, past, owned[0].ID)

	page, err := f.bookings.FindForBooker(ctx, booker.ID, models.StateAll, dto.PageQuery{From: 1, Size: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, past, page[0].ID)

	// 時計を進めると FUTURE だった予約が CURRENT になる
	f.clock.t = testNow.Add(30 * time.Hour)
	current, err := f.bookings.FindForBooker(ctx, booker.ID, models.StateCurrent, dto.PageQuery{Size: 10})
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, future, current[0].ID)

	_, err = f.bookings.FindForOwner(ctx, 999, models.StateAll, dto.PageQuery{Size: 10})
	assert.Equal(t, CodeNotFound, apiCode(t, err))
}
