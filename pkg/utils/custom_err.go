package utils

import "errors"

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrQueryTooShort     = errors.New("query must be at least 2 characters")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidTravelMode = errors.New("invalid travel mode")
)
