package dto

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindBody(body string, obj any) error {
	RegisterValidators()
	return binding.JSON.BindBody([]byte(body), obj)
}

// failedTags はフィールド名とタグの組を返す
func failedTags(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	out := map[string]string{}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func futureString(d time.Duration) string {
	return time.Now().Add(d).Format(DateTimeLayout)
}

func TestCreateUserInput_Validation(t *testing.T) {
	var in CreateUserInput
	require.NoError(t, bindBody(`{"name":"alice","email":"alice@example.com"}`, &in))

	err := bindBody(`{"name":"   ","email":"not-an-email"}`, &CreateUserInput{})
	assert.Equal(t, map[string]string{"name": "notblank", "email": "email"}, failedTags(t, err))

	err = bindBody(`{}`, &CreateUserInput{})
	assert.Equal(t, map[string]string{"name": "required", "email": "required"}, failedTags(t, err))
}

func TestUpdateUserInput_Validation(t *testing.T) {
	var in UpdateUserInput
	require.NoError(t, bindBody(`{}`, &in))
	assert.Nil(t, in.Name)
	assert.Nil(t, in.Email)

	err := bindBody(`{"email":"broken"}`, &UpdateUserInput{})
	assert.Equal(t, map[string]string{"email": "email"}, failedTags(t, err))
}

func TestCreateItemInput_Validation(t *testing.T) {
	var in CreateItemInput
	require.NoError(t, bindBody(`{"name":"drill","description":"power drill","available":false}`, &in))
	require.NotNil(t, in.Available)
	assert.False(t, *in.Available)

	err := bindBody(`{"name":"drill","description":""}`, &CreateItemInput{})
	assert.Equal(t, map[string]string{"description": "required", "available": "required"}, failedTags(t, err))
}

func TestCreateBookingInput_Validation(t *testing.T) {
	var in CreateBookingInput
	body := `{"itemId":1,"start":"` + futureString(time.Hour) + `","end":"` + futureString(2*time.Hour) + `"}`
	require.NoError(t, bindBody(body, &in))
	assert.True(t, in.Start.Before(in.End.Time))

	t.Run("start in the past", func(t *testing.T) {
		body := `{"itemId":1,"start":"` + futureString(-time.Hour) + `","end":"` + futureString(time.Hour) + `"}`
		err := bindBody(body, &CreateBookingInput{})
		assert.Equal(t, map[string]string{"start": "future"}, failedTags(t, err))
	})

	t.Run("end before start", func(t *testing.T) {
		body := `{"itemId":1,"start":"` + futureString(2*time.Hour) + `","end":"` + futureString(time.Hour) + `"}`
		err := bindBody(body, &CreateBookingInput{})
		assert.Equal(t, map[string]string{"end": "startbeforeend"}, failedTags(t, err))
	})

	t.Run("missing fields", func(t *testing.T) {
		err := bindBody(`{}`, &CreateBookingInput{})
		assert.Equal(t, map[string]string{"itemId": "required", "start": "required", "end": "required"}, failedTags(t, err))
	})

	t.Run("malformed date", func(t *testing.T) {
		err := bindBody(`{"itemId":1,"start":"tomorrow","end":"later"}`, &CreateBookingInput{})
		assert.Error(t, err)
	})
}

func TestPageQuery_Binding(t *testing.T) {
	RegisterValidators()

	var q PageQuery
	require.NoError(t, binding.Query.Bind(httptest.NewRequest("GET", "/items", nil), &q))
	assert.Equal(t, PageQuery{From: 0, Size: 10}, q)

	err := binding.Query.Bind(httptest.NewRequest("GET", "/items?from=-1&size=0", nil), &PageQuery{})
	assert.Equal(t, map[string]string{"from": "min", "size": "min"}, failedTags(t, err))

	var list BookingListQuery
	require.NoError(t, binding.Query.Bind(httptest.NewRequest("GET", "/bookings?size=5", nil), &list))
	assert.Equal(t, "ALL", list.State)
	assert.Equal(t, 5, list.Size)
}
