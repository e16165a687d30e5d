package preset

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrNoName    = errors.New("no preset name")
)
