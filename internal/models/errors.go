package models

import "errors"

// ErrTaskNotFound indicates the requested task does not exist (or was deleted concurrently)
var ErrTaskNotFound = errors.New("task not found")
