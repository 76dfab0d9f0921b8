// Package config loads the reservations service configuration by merging
// four sources in priority order: environment variables, command-line flags,
// an optional JSON file, and built-in defaults. Merging relies on mergo, so a
// later source only fills fields that earlier sources left empty.
package config
