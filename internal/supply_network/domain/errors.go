package domain

import "errors"

var (
	ErrNetworkNotFound = errors.New("network not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrInvalidRole     = errors.New("invalid node role")
)
