package list

import (
	"errors"
)

var (
	ErrorListHandleIsNil   = errors.New("list handle is nil")
	ErrorListHandleNotLive = errors.New("list handle does not refer to a live node")
)
