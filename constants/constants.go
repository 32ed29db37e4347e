package constants

// リクエストヘッダー
const (
	HeaderSharerUserID  = "X-Sharer-User-Id"
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"
)

// gin.Context のキー
const (
	CtxUserIDKey    = "user_id"
	CtxRequestIDKey = "request_id"
)

// ページング
const (
	DefaultFrom = 0
	DefaultSize = 10
)

// エラーメッセージ
const (
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrMissingUserHeader = "X-Sharer-User-Id header is required"
	ErrInvalidUserHeader = "X-Sharer-User-Id header must be a positive number"
	ErrUnknownState      = "Unknown state: "
	ErrServerUnavailable = "shareit server is unavailable"
	ErrUnauthorized      = "invalid service token"
)
