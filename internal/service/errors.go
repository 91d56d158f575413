package service

import "errors"

var (
	ErrVersionIsNotSpecified     = errors.New("project version is not specified")
	ErrProjectNameIsNotSpecified = errors.New("project name is not specified")
)
