package feather

import "errors"

var (
	ErrBadSpec = errors.New("bad spec")
	ErrBadAxis = errors.New("bad axis")
)
