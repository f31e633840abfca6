// Package pesapal is a client for the Pesapal v3 API: authentication, IPN
// registration, order submission and transaction status.
package pesapal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/tidwall/gjson"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	pathRequestToken = "/api/Auth/RequestToken"
	pathRegisterIPN  = "/api/URLSetup/RegisterIPN"
	pathSubmitOrder  = "/api/Transactions/SubmitOrderRequest"
	pathOrderStatus  = "/api/Transactions/GetTransactionStatus"

	maxBodySize       = 1 << 20
	maxDescriptionLen = 100
)

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Timeout        time.Duration
	Retry          retry.Strategy
	TokenMaxTTL    time.Duration
	TokenMargin    time.Duration
}

type Option func(*Client)

func WithClock(c clockwork.Clock) Option {
	return func(cl *Client) {
		cl.clock = c
	}
}

type Client struct {
	cfg    Config
	http   *http.Client
	tokens *TokenSource
	clock  clockwork.Clock
	logger logger.Logger
}

func NewClient(cfg Config, httpClient *http.Client, cache TokenCache, log logger.Logger, opts ...Option) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("%w: consumer key and secret are required", domain.ErrProviderConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base url is required", domain.ErrProviderConfig)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Retry.Attempts < 1 {
		cfg.Retry.Attempts = 1
	}
	if cfg.TokenMaxTTL <= 0 {
		cfg.TokenMaxTTL = 4 * time.Minute
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		cfg:    cfg,
		http:   httpClient,
		clock:  clockwork.NewRealClock(),
		logger: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tokens = newTokenSource(cache, c.fetchToken, c.clock, cfg.TokenMaxTTL, cfg.TokenMargin, log)

	return c, nil
}

// RequestToken asks the provider for a fresh bearer token, bypassing the cache.
func (c *Client) RequestToken(ctx context.Context) (Token, error) {
	var token Token
	err := c.withRetry(ctx, pathRequestToken, func(ctx context.Context) error {
		var err error
		token, err = c.fetchToken(ctx)
		return err
	})
	return token, err
}

// RegisterIPN registers url as a GET notification endpoint and returns its ipn_id.
func (c *Client) RegisterIPN(ctx context.Context, ipnURL string) (string, error) {
	body, err := c.call(ctx, http.MethodPost, pathRegisterIPN, nil,
		ipnRequest{URL: ipnURL, IPNNotificationType: http.MethodGet}, true)
	if err != nil {
		return "", fmt.Errorf("register ipn: %w", err)
	}
	if apiErr := bodyError(http.StatusOK, body); apiErr != nil {
		return "", fmt.Errorf("register ipn: %w", apiErr)
	}

	var resp ipnResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("register ipn: decode: %w", err)
	}
	if resp.IPNID == "" {
		return "", fmt.Errorf("register ipn: %w", &APIError{StatusCode: http.StatusOK, Message: "empty ipn_id"})
	}

	return resp.IPNID, nil
}

func (c *Client) SubmitOrder(ctx context.Context, req domain.OrderRequest) (*domain.ProviderOrder, error) {
	payload := orderRequest{
		ID:             req.Reference,
		Currency:       req.Currency,
		Amount:         toMajor(req.Amount),
		Description:    truncate(req.Description, maxDescriptionLen),
		CallbackURL:    req.CallbackURL,
		NotificationID: req.NotificationID,
		BillingAddress: billingAddress{
			EmailAddress: req.Customer.Email,
			PhoneNumber:  req.Customer.Phone,
			CountryCode:  req.Customer.CountryCode,
			FirstName:    req.Customer.FirstName,
			LastName:     req.Customer.LastName,
		},
	}

	body, err := c.call(ctx, http.MethodPost, pathSubmitOrder, nil, payload, true)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	if apiErr := bodyError(http.StatusOK, body); apiErr != nil {
		return nil, fmt.Errorf("submit order: %w", apiErr)
	}

	var resp orderResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("submit order: decode: %w", err)
	}
	if resp.OrderTrackingID == "" || resp.RedirectURL == "" {
		return nil, fmt.Errorf("submit order: %w", &APIError{
			StatusCode: http.StatusOK,
			Message:    "response without tracking id or redirect url",
		})
	}

	return &domain.ProviderOrder{
		OrderTrackingID:   resp.OrderTrackingID,
		MerchantReference: resp.MerchantReference,
		RedirectURL:       resp.RedirectURL,
	}, nil
}

// GetTransactionStatus returns the provider's view of an order together with the
// raw payload. Pesapal reports unpaid orders with status_code 0 and an error
// object, so a body carrying a status is never treated as a failure.
func (c *Client) GetTransactionStatus(ctx context.Context, trackingID string) (*domain.ProviderStatus, error) {
	query := url.Values{"orderTrackingId": {trackingID}}
	body, err := c.call(ctx, http.MethodGet, pathOrderStatus, query, nil, true)
	if err != nil {
		return nil, fmt.Errorf("transaction status: %w", err)
	}

	if !gjson.GetBytes(body, "status_code").Exists() &&
		!gjson.GetBytes(body, "payment_status_description").Exists() {
		if apiErr := bodyError(http.StatusOK, body); apiErr != nil {
			return nil, fmt.Errorf("transaction status: %w", apiErr)
		}
		return nil, fmt.Errorf("transaction status: %w", &APIError{
			StatusCode: http.StatusOK,
			Message:    "response without payment status",
		})
	}

	var resp statusResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("transaction status: decode: %w", err)
	}

	return &domain.ProviderStatus{
		OrderTrackingID:   trackingID,
		MerchantReference: resp.MerchantReference,
		Status:            domain.ParseProviderStatus(resp.PaymentStatusDescription, resp.StatusCode),
		Description:       resp.PaymentStatusDescription,
		StatusCode:        resp.StatusCode,
		ConfirmationCode:  resp.ConfirmationCode,
		PaymentMethod:     resp.PaymentMethod,
		Amount:            resp.Amount,
		Currency:          resp.Currency,
		Raw:               json.RawMessage(body),
	}, nil
}

func (c *Client) fetchToken(ctx context.Context) (Token, error) {
	body, err := c.attempt(ctx, http.MethodPost, pathRequestToken, nil,
		mustJSON(tokenRequest{ConsumerKey: c.cfg.ConsumerKey, ConsumerSecret: c.cfg.ConsumerSecret}), false)
	if err != nil {
		return Token{}, err
	}
	if apiErr := bodyError(http.StatusOK, body); apiErr != nil {
		return Token{}, apiErr
	}

	var resp tokenResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return Token{}, fmt.Errorf("decode token: %w", err)
	}
	if resp.Token == "" {
		return Token{}, &APIError{StatusCode: http.StatusOK, Message: "empty token"}
	}

	return Token{Value: resp.Token, ExpiresAt: parseExpiry(resp.ExpiryDate)}, nil
}

func (c *Client) call(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	authed bool,
) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	var out []byte
	err := c.withRetry(ctx, path, func(ctx context.Context) error {
		var err error
		out, err = c.attempt(ctx, method, path, query, payload, authed)
		return err
	})
	return out, err
}

// withRetry retries fn on transient failures only. A definitive failure ends the
// loop on the attempt that produced it.
func (c *Client) withRetry(ctx context.Context, path string, fn func(ctx context.Context) error) error {
	var definitive error
	attempt := 0

	err := retry.DoContext(ctx, c.cfg.Retry, func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			definitive = err
			return nil
		}
		c.logger.Warn("pesapal request failed",
			logger.String("path", path),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)
		return err
	})
	if definitive != nil {
		return definitive
	}
	if err != nil && !IsTransient(err) {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	return err
}

func (c *Client) attempt(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload []byte,
	authed bool,
) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrProviderUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized && authed:
		if err = c.tokens.Invalidate(ctx); err != nil {
			c.logger.Warn("failed to invalidate pesapal token", logger.String("error", err.Error()))
		}
		return nil, fmt.Errorf("%w: token rejected", domain.ErrProviderUnavailable)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s %s: http %d", domain.ErrProviderUnavailable, method, path, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		if apiErr := bodyError(resp.StatusCode, body); apiErr != nil {
			return nil, apiErr
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: truncate(string(body), 200)}
	}

	return body, nil
}

func parseExpiry(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.9999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// toMajor converts minor units to the decimal amount Pesapal expects.
func toMajor(minor int64) float64 {
	return float64(minor) / 100
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
