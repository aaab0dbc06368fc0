package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MikeRez0/coinsend/internal/adapter/config"
	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"go.uber.org/zap"
)

// Client asks a remote lookup service about a username.
type Client struct {
	logger *zap.Logger
	host   string
	client *http.Client
}

func NewClient(cfg *config.Lookup, log *zap.Logger) (*Client, error) {
	if cfg.HostString == "" {
		return nil, errors.New("lookup service address is empty")
	}
	return &Client{
		host:   cfg.HostString,
		logger: log,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type lookupResponse struct {
	Found     bool   `json:"found"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type errLookupRequest struct {
	StatusCode int
	RetryAfter time.Duration
}

func (e *errLookupRequest) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("lookup status %d. Retry-After: %s", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("lookup status %d", e.StatusCode)
}

func (e *errLookupRequest) Unwrap() error {
	return domain.ErrLookupFailed
}

func (c *Client) Lookup(ctx context.Context, username string) (*port.LookupResult, error) {
	requestStr := "http://" + c.host + "/api/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	c.logger.Debug("Fire request for user lookup", zap.String("username", username))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return &port.LookupResult{Found: false}, nil
	case http.StatusTooManyRequests:
		// reported, not retried: the next edit triggers a new lookup
		var retryAfter time.Duration
		if sec, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			retryAfter = time.Duration(sec) * time.Second
		}
		return nil, &errLookupRequest{StatusCode: resp.StatusCode, RetryAfter: retryAfter}
	default:
		c.logger.Error("unexpected status for request",
			zap.String("username", username), zap.Int("status", resp.StatusCode))
		return nil, &errLookupRequest{StatusCode: resp.StatusCode}
	}

	var result lookupResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &port.LookupResult{Found: result.Found, AvatarURL: result.AvatarURL}, nil
}
