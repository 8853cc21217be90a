package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// out of range.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing client address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates an out-of-range lifecycle setting such as
	// a non-positive invitation TTL or an approval rate outside [0,1].
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDeliveryConfigs indicates a delay window whose minimum
	// exceeds its maximum.
	ErrInvalidDeliveryConfigs = errors.New("invalid delivery configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
