package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so that JSON config files can express
// durations as human-readable strings ("30s", "1m30s").
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses either a duration string or a raw number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// StructuredJSONConfig mirrors StructuredConfig for the JSON file source.
// Durations use the Duration wrapper so operators can write "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app"`
	Storage struct {
		DB struct {
			DSN string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress     string   `json:"address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`
	Upstreams struct {
		Users struct {
			Address string `json:"address"`
		} `json:"users"`
		Listings struct {
			Address string `json:"address"`
		} `json:"listings"`
		Resilience struct {
			RequestTimeout   Duration `json:"request_timeout"`
			MaxRetries       uint64   `json:"max_retries"`
			BackoffBase      Duration `json:"backoff_base"`
			BreakerThreshold uint32   `json:"breaker_threshold"`
			BreakerCooldown  Duration `json:"breaker_cooldown"`
		} `json:"resilience"`
	} `json:"upstreams"`
}

// parseJSON reads the JSON config file at path and converts it into a
// *StructuredConfig suitable for merging with the other sources.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	jsonCfg := new(StructuredJSONConfig)
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: j.App.TokenSignKey,
			TokenIssuer:  j.App.TokenIssuer,
			Version:      j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  j.Server.RequestTimeout.Duration,
			ShutdownTimeout: j.Server.ShutdownTimeout.Duration,
		},
		Upstreams: Upstreams{
			Users:    Upstream{Address: j.Upstreams.Users.Address},
			Listings: Upstream{Address: j.Upstreams.Listings.Address},
			Resilience: Resilience{
				RequestTimeout:   j.Upstreams.Resilience.RequestTimeout.Duration,
				MaxRetries:       j.Upstreams.Resilience.MaxRetries,
				BackoffBase:      j.Upstreams.Resilience.BackoffBase.Duration,
				BreakerThreshold: j.Upstreams.Resilience.BreakerThreshold,
				BreakerCooldown:  j.Upstreams.Resilience.BreakerCooldown.Duration,
			},
		},
	}
}
