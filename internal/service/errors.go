package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
	ErrNoActivationAdapter   = errors.New("activation adapter is not provided")
)
