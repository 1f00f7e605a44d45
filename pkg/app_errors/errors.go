package apperrors

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrEventNotFound          = errors.New("event not found")
	ErrCommentNotFound        = errors.New("comment not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrEventEnded             = errors.New("event already ended")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDecodeFailed           = errors.New("decode failed")
	ErrInternalServerError    = errors.New("internal server error")
)
