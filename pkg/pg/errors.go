package pg

import "errors"

var (
	ErrParseURL    = errors.New("pg: failed to parse connection url")
	ErrConnect     = errors.New("pg: failed to connect")
	ErrHealthcheck = errors.New("pg: healthcheck failed")
)
