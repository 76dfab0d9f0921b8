package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// classifyResponse translates a completed upstream HTTP exchange into the
// package's sentinel errors. Transient faults (5xx) are marked retryable;
// every other non-success outcome, 401 and 403 included, is a definitive
// "no such entity" answer. The upstream applying its own authorization is
// treated the same as the entity not existing, not escalated.
//
// Both upstreams wrap payloads in a response envelope, so a 2xx status with
// an unsuccessful envelope still means the entity could not be resolved.
func classifyResponse(resp *resty.Response, envelopeSuccess bool, envelopeMessage string) error {
	code := resp.StatusCode()

	if code >= http.StatusInternalServerError {
		return retry.RetryableError(fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, code, responseBody(resp)))
	}

	if code >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: http %d: %s", ErrNotFound, code, responseBody(resp))
	}

	if !envelopeSuccess {
		if envelopeMessage == "" {
			envelopeMessage = "entity not resolved"
		}
		return fmt.Errorf("%w: %s", ErrNotFound, envelopeMessage)
	}

	return nil
}

func responseBody(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}
