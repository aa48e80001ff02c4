package handlers

import "errors"

// ErrInvalidInput is returned when user input fails validation before it
// reaches the domain services.
var ErrInvalidInput = errors.New("invalid input")
