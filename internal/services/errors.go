package services

import "errors"

// Business-rule failures the handlers map onto HTTP statuses. Everything else
// coming out of a service is treated as an unexpected persistence failure.
var (
  ErrNotAuthenticated = errors.New("not authenticated")
  ErrOwnerOnly        = errors.New("this API is only available to owner accounts")
  ErrCategoryNotFound = errors.New("category does not exist")
  ErrMenuNotFound     = errors.New("menu does not exist")
  ErrNoEditPermission = errors.New("no permission to modify this menu")
)
