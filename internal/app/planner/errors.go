package planner

import "errors"

var ErrInvalidRequest = errors.New("invalid_request")
