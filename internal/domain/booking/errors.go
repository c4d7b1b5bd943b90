package booking

import "errors"

// ErrStoreUnavailable marks storage failures the caller may retry.
var ErrStoreUnavailable = errors.New("booking store unavailable")
