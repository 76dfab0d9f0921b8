package config

import "fmt"

// validate checks that the merged configuration carries everything the
// service cannot run without: a database DSN, both upstream addresses, and a
// token verification key.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if c.Upstreams.Users.Address == "" {
		return fmt.Errorf("%w: user directory address is required", ErrInvalidUpstreamConfigs)
	}

	if c.Upstreams.Listings.Address == "" {
		return fmt.Errorf("%w: listing catalog address is required", ErrInvalidUpstreamConfigs)
	}

	if c.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return nil
}
