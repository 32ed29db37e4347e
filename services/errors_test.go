package services

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrInvalid("x")))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrUnknownState("NOPE")))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrNotFound("x")))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(ErrUnauthorized("x")))
	assert.Equal(t, http.StatusBadGateway, ToHTTPStatus(ErrUnavailable("x")))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrInternal("x")))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(fmt.Errorf("wrapped: %w", ErrNotFound("x"))))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(io.ErrUnexpectedEOF))
}

func TestFromBindError(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Size  int    `validate:"min=1"`
	}
	err := validator.New().Struct(input{Email: "nope"})

	api := FromBindError(err)
	assert.Equal(t, CodeInvalidArgument, api.Code)
	require.Len(t, api.Fields, 3)
	assert.Equal(t, FieldError{Field: "name", Message: "must not be empty"}, api.Fields[0])
	assert.Equal(t, FieldError{Field: "email", Message: "must be a well-formed email address"}, api.Fields[1])
	assert.Equal(t, FieldError{Field: "size", Message: "must be greater than or equal to 1"}, api.Fields[2])

	assert.Equal(t, "request body must not be empty", FromBindError(io.EOF).Message)
	assert.Equal(t, ErrNotFound("x"), FromBindError(ErrNotFound("x")))
}
