package query

import "errors"

// ErrTypeMismatch means a key holds a value of a different type than requested.
// It indicates two loaders writing different types under the same key.
var ErrTypeMismatch = errors.New("cached value has unexpected type")
