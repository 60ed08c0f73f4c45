package model

import (
	"errors"
	"fmt"
)

// ErrLookupMiss matches every NotFoundError via errors.Is.
var ErrLookupMiss = errors.New("lookup miss")

// NotFoundError reports an identifier that does not resolve to a current
// position in the hierarchy.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrLookupMiss
}

func errNotFound(kind Kind, id ID) error {
	return NotFoundError{Kind: kind.String(), ID: id.String()}
}
