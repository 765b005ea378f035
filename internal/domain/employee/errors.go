package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrStoreNotReady    = errors.New("workforce store is not ready")
)
