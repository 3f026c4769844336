package service

import (
	"errors"
	"net/http"
)

var (
	ErrAPIKeyRequired   = errors.New("Api-Key required")
	ErrParamInvalid     = errors.New("invalid request parameters")
	ErrUserNotFound     = errors.New("user not found")
	ErrTweetNotFound    = errors.New("tweet not found")
	ErrFollowSelf       = errors.New("cannot follow yourself")
	ErrFileNotSupported = errors.New("file extension not allowed")
	UnExpectedError     = errors.New("unexpected error, please retry later")
)

// ErrorMap binds sentinel errors to the HTTP status the handlers report.
var ErrorMap = map[error]int{
	ErrAPIKeyRequired:   http.StatusUnauthorized,
	ErrParamInvalid:     http.StatusBadRequest,
	ErrUserNotFound:     http.StatusNotFound,
	ErrTweetNotFound:    http.StatusNotFound,
	ErrFollowSelf:       http.StatusBadRequest,
	ErrFileNotSupported: http.StatusBadRequest,
	UnExpectedError:     http.StatusInternalServerError,
}
