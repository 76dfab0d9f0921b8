package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"

	"github.com/homestays/reservations-api/internal/config"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/models"
)

// serviceClient is the shared failure-handling core of both upstream clients.
// It owns the HTTP client bound to a single base URL, the retry settings, and
// a circuit breaker dedicated to that upstream. Breakers are per-upstream so
// that an outage of the listing catalog never blocks user lookups.
type serviceClient struct {
	client     *utils.HTTPClient
	breaker    *gobreaker.CircuitBreaker
	resilience config.Resilience

	logger *logger.Logger
}

func newServiceClient(name string, upstream config.Upstream, resilience config.Resilience, log *logger.Logger) (*serviceClient, error) {
	baseURL, err := normalizeBaseURL(upstream.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid %s upstream address: %w", name, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(resilience.RequestTimeout)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     resilience.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= resilience.BreakerThreshold
		},
		// a definitive "not found" is a healthy answer, only unresolved
		// faults may trip the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("upstream", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &serviceClient{
		client:     client,
		breaker:    breaker,
		resilience: resilience,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// getEntity performs a resilient GET against path and decodes the enveloped
// payload into T.
//
// The whole retried exchange runs inside the breaker: transient faults are
// retried with exponential backoff (base, 2*base, 4*base, ...) up to
// MaxRetries extra attempts, and only an exchange that still cannot produce a
// definitive answer counts as a breaker failure. While the breaker is open,
// calls fail fast with [ErrUpstreamUnavailable] without touching the network.
//
// The caller's bearer token is forwarded on every attempt so the upstream
// sees the original credentials.
func getEntity[T any](ctx context.Context, c *serviceClient, path, token string) (T, error) {
	var zero T

	result, err := c.breaker.Execute(func() (any, error) {
		var envelope models.Envelope[T]

		backoff := retry.WithMaxRetries(c.resilience.MaxRetries, retry.NewExponential(c.resilience.BackoffBase))
		attemptErr := retry.Do(ctx, backoff, func(ctx context.Context) error {
			envelope = models.Envelope[T]{}

			req := c.client.R().
				SetContext(ctx).
				SetResult(&envelope)
			if token != "" {
				req.SetAuthToken(token)
			}

			resp, err := req.Get(path)
			if err != nil {
				return retry.RetryableError(fmt.Errorf("%w: %s request: %w", ErrUpstreamUnavailable, path, err))
			}

			return classifyResponse(resp, envelope.Success, envelope.Message)
		})
		if attemptErr != nil {
			return zero, attemptErr
		}

		return envelope.Data, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: circuit open: %s", ErrUpstreamUnavailable, path)
		}
		return zero, err
	}

	data, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected payload type for %s", ErrUnexpectedResponse, path)
	}

	return data, nil
}

// userDirectoryClient is the HTTP implementation of [UserDirectory].
type userDirectoryClient struct {
	*serviceClient
}

// NewUserDirectoryClient constructs the HTTP client for the user directory
// service from cfg.Users and the shared resilience settings.
func NewUserDirectoryClient(cfg config.Upstreams, log *logger.Logger) (UserDirectory, error) {
	core, err := newServiceClient("user-directory", cfg.Users, cfg.Resilience, log)
	if err != nil {
		return nil, err
	}

	return &userDirectoryClient{serviceClient: core}, nil
}

// GetUser implements [UserDirectory].
func (c *userDirectoryClient) GetUser(ctx context.Context, userID string, token string) (models.RemoteUser, error) {
	user, err := getEntity[models.RemoteUser](ctx, c.serviceClient, "/users/"+url.PathEscape(userID), token)
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("get user %s: %w", userID, err)
	}

	return user, nil
}

// listingCatalogClient is the HTTP implementation of [ListingCatalog].
type listingCatalogClient struct {
	*serviceClient
}

// NewListingCatalogClient constructs the HTTP client for the listing catalog
// service from cfg.Listings and the shared resilience settings.
func NewListingCatalogClient(cfg config.Upstreams, log *logger.Logger) (ListingCatalog, error) {
	core, err := newServiceClient("listing-catalog", cfg.Listings, cfg.Resilience, log)
	if err != nil {
		return nil, err
	}

	return &listingCatalogClient{serviceClient: core}, nil
}

// GetListing implements [ListingCatalog].
func (c *listingCatalogClient) GetListing(ctx context.Context, listingID string, token string) (models.RemoteListing, error) {
	listing, err := getEntity[models.RemoteListing](ctx, c.serviceClient, "/listings/"+url.PathEscape(listingID), token)
	if err != nil {
		return models.RemoteListing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}

	return listing, nil
}
