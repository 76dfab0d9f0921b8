package config

import "errors"

var (
	// ErrInvalidStorageConfigs indicates that the database settings are
	// incomplete.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidUpstreamConfigs indicates that one or both upstream service
	// addresses are missing.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configs")

	// ErrInvalidAppConfigs indicates that application-level settings such as
	// the token verification key are missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs")
)
