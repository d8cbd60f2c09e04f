package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource matching your query")
	ErrInvalidKind      = errors.New("kind must be one of income, expense")
	ErrCategoryInUse    = errors.New("the category is still used by at least one transaction")
)
