package carp

import "errors"

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrMissingDepot     = errors.New("depot is not set")
	ErrNegativeDemand   = errors.New("negative demand")
	ErrNegativeCost     = errors.New("negative cost")
	ErrDuplicateService = errors.New("duplicate service")
	ErrUnknownService   = errors.New("unknown service")
	ErrMissingService   = errors.New("service not served by any route")
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")
	ErrUnknownVertex    = errors.New("unknown vertex")
	ErrUnreachable      = errors.New("unreachable vertex")
)
