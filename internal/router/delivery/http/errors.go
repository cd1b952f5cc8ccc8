package http

import "errors"

var (
	errQueryRequired = errors.New("query is required")
	errQueryTooLong  = errors.New("query is too long")
)
