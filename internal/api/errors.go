package api

import "errors"

var (
	errInvalidJSON = errors.New("invalid json")
	errNoWaypoints = errors.New("waypoints required")
)
