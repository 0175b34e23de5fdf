package combin

import "errors"

// ErrInvalidArgument is returned when a combination is requested with a
// negative size or over a negative range.
var ErrInvalidArgument = errors.New("combin: invalid argument")
