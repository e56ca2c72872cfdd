package switchyard

import "errors"

var (
	ErrBadConfig       = errors.New("bad config")
	ErrBadConvention   = errors.New("missing resource convention")
	ErrBadPathArgument = errors.New("bad path argument")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoMatch         = errors.New("no route matches")
	ErrNotExist        = errors.New("not exist")
	ErrNotValid        = errors.New("invalid")
)
