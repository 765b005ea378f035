package user

import "errors"

var (
	ErrManagementRoleRequired = errors.New("admin or manager role required")
)
