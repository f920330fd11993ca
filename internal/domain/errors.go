package domain

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrValidation     = errors.New("invalid player data")
	ErrStorage        = errors.New("storage failure")
)
