package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrEmployeeHasNoSalary  = errors.New("employee has no monthly salary configured")
)
