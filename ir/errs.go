package ir

import (
	"errors"
)

var (
	ErrEmptyPath = errors.New("empty path")
	ErrParse     = errors.New("parse error")
)
