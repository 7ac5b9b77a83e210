package service

import "errors"

// ErrActivityNotFound is wrapped when an id does not name a catalog activity.
var ErrActivityNotFound = errors.New("activity not found")
