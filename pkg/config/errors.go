package config

import "errors"

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalidFile       = errors.New("config: invalid config file")
	ErrRequiredEnv       = errors.New("config: required environment variable not set")
)
