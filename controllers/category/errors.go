package categoryControllers

import "errors"

var (
	errParentNotFound = errors.New("parent category does not exist")
	errInvalidParent  = errors.New("category cannot be its own ancestor")
)
