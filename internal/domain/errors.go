package domain

import "errors"

var (
	ErrMalformedLine   = errors.New("malformed sequence line")
	ErrInputUnreadable = errors.New("input file unreadable")
	ErrOutputWrite     = errors.New("output write failed")
	ErrRunNotFound     = errors.New("run not found")
)
