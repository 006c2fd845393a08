package courses

import "errors"

var ErrNotFound = errors.New("course not found")
