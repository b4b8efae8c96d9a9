package service

import "errors"

// Service errors.
var (
	ErrMazeNotFound      = errors.New("maze not found")
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)
