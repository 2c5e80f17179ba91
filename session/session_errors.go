package session

import "errors"

var (
	ErrIncompleteSession = errors.New("session requires both a token and a profile")
)
