package linefold

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrEmptyDelimiter = errors.New("empty delimiter")
)
