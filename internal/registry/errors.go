package registry

import "errors"

var (
	// ErrNotFound means the named model is not registered.
	ErrNotFound = errors.New("model not found")
	// ErrLastModel means the registry would be left empty.
	ErrLastModel = errors.New("cannot remove the last remaining model")
	// ErrNoActiveModel means no active model is configured.
	ErrNoActiveModel = errors.New("no active model configured")
)
