package hashmap

import "errors"

var (
	ErrUnknownHashFunc = errors.New("hashmap: unknown hash function")
)
