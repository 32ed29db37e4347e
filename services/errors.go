package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gin-shareit/constants"

	"github.com/go-playground/validator/v10"
)

// ===== Error model =====

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUnknownState    Code = "UNKNOWN_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeInternal        Code = "INTERNAL"
)

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type APIError struct {
	Code    Code
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func ErrInvalidf(format string, args ...any) *APIError {
	return ErrInvalid(fmt.Sprintf(format, args...))
}

func ErrNotFoundf(format string, args ...any) *APIError {
	return ErrNotFound(fmt.Sprintf(format, args...))
}

func ErrUnknownState(state string) *APIError {
	return &APIError{Code: CodeUnknownState, Message: constants.ErrUnknownState + state}
}

func ErrUnauthorized(msg string) *APIError {
	return &APIError{Code: CodeUnauthorized, Message: msg}
}

func ErrUnavailable(msg string) *APIError {
	return &APIError{Code: CodeUnavailable, Message: msg}
}

// FromBindError は ShouldBindJSON / ShouldBindQuery のエラーをフィールド単位の APIError に変換する
func FromBindError(err error) *APIError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fieldName(fe), Message: describe(fe)})
		}
		return &APIError{Code: CodeInvalidArgument, Message: "validation failed", Fields: fields}
	}
	var api *APIError
	if errors.As(err, &api) {
		return api
	}
	if errors.Is(err, io.EOF) {
		return ErrInvalid("request body must not be empty")
	}
	return ErrInvalid(err.Error())
}

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeUnknownState:
			return http.StatusBadRequest
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeNotFound:
			return http.StatusNotFound
		case CodeUnavailable:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func fieldName(fe validator.FieldError) string {
	if f := fe.Field(); f != "" {
		return strings.ToLower(f[:1]) + f[1:]
	}
	return fe.StructField()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "notblank":
		return "must not be blank"
	case "future":
		return "must be a future date"
	case "min", "gte":
		return "must be greater than or equal to " + fe.Param()
	case "startbeforeend":
		return "booking start must be before its end"
	default:
		return "failed on " + fe.Tag()
	}
}
