package catalog

import "errors"

var (
	ErrTestNotFound = errors.New("test not found")
	ErrItemNotFound = errors.New("test item not found")
)
