package pesapal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/jarcoal/httpmock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const testBaseURL = "https://pay.test"

var (
	tokenURL  = testBaseURL + pathRequestToken
	ipnURL    = testBaseURL + pathRegisterIPN
	orderURL  = testBaseURL + pathSubmitOrder
	statusURL = testBaseURL + pathOrderStatus
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, clock clockwork.Clock) (*Client, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	cfg := Config{
		BaseURL:        testBaseURL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Timeout:        time.Second,
		Retry:          retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1},
		TokenMaxTTL:    4 * time.Minute,
		TokenMargin:    30 * time.Second,
	}
	c, err := NewClient(cfg, &http.Client{Transport: mt}, NewMemoryTokenCache(clock), newTestLogger(t), WithClock(clock))
	require.NoError(t, err)
	return c, mt
}

func tokenResponder(clock clockwork.Clock) httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
		"token":      "tok-1",
		"expiryDate": clock.Now().Add(5 * time.Minute).UTC().Format(time.RFC3339Nano),
		"status":     "200",
	})
}

func orderResponder() httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
		"order_tracking_id":  "abc-123",
		"merchant_reference": "NA-1",
		"redirect_url":       "https://pay.test/iframe?OrderTrackingId=abc-123",
		"status":             "200",
	})
}

func testOrder() domain.OrderRequest {
	return domain.OrderRequest{
		Reference:      "NA-1",
		Amount:         1_000_000,
		Currency:       "KES",
		Description:    "Sunrise game drive",
		CallbackURL:    "https://natuasili.test/api/payments/callback",
		NotificationID: "ipn-1",
		Customer:       domain.Customer{FirstName: "Amani", LastName: "Otieno", Email: "amani@example.com"},
	}
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{BaseURL: testBaseURL}, nil, NewMemoryTokenCache(clockwork.NewFakeClock()), newTestLogger(t))
	assert.ErrorIs(t, err, domain.ErrProviderConfig)

	_, err = NewClient(Config{ConsumerKey: "k", ConsumerSecret: "s"}, nil, NewMemoryTokenCache(clockwork.NewFakeClock()), newTestLogger(t))
	assert.ErrorIs(t, err, domain.ErrProviderConfig)
}

func TestClient_SubmitOrder_Success(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	var sent orderRequest
	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"))
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &sent))
		return orderResponder()(req)
	})

	order, err := c.SubmitOrder(context.Background(), testOrder())

	require.NoError(t, err)
	assert.Equal(t, "abc-123", order.OrderTrackingID)
	assert.Contains(t, order.RedirectURL, "abc-123")
	assert.InDelta(t, 10000.0, sent.Amount, 0.0001)
	assert.Equal(t, "KES", sent.Currency)
	assert.Equal(t, "ipn-1", sent.NotificationID)
}

func TestClient_SubmitOrder_TruncatesDescription(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	var sent orderRequest
	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &sent))
		return orderResponder()(req)
	})

	order := testOrder()
	order.Description = string(make([]byte, 250))
	_, err := c.SubmitOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Len(t, sent.Description, maxDescriptionLen)
}

func TestClient_TokenIsCached(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, orderResponder())

	for i := 0; i < 3; i++ {
		_, err := c.SubmitOrder(context.Background(), testOrder())
		require.NoError(t, err)
	}

	calls := mt.GetCallCountInfo()
	assert.Equal(t, 1, calls["POST "+tokenURL])
	assert.Equal(t, 3, calls["POST "+orderURL])
}

func TestClient_TokenRefreshedAfterMaxTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, orderResponder())

	_, err := c.SubmitOrder(context.Background(), testOrder())
	require.NoError(t, err)

	clock.Advance(4*time.Minute + time.Second)

	_, err = c.SubmitOrder(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Equal(t, 2, mt.GetCallCountInfo()["POST "+tokenURL])
}

func TestClient_AuthFailure_NoOrderSent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
		"error": map[string]any{
			"error_type": "api_error",
			"code":       "invalid_consumer_key_or_secret_provided",
			"message":    "Invalid consumer key or secret",
		},
		"status": "500",
	}))
	mt.RegisterResponder(http.MethodPost, orderURL, orderResponder())

	_, err := c.SubmitOrder(context.Background(), testOrder())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderRejected)
	calls := mt.GetCallCountInfo()
	assert.Equal(t, 1, calls["POST "+tokenURL])
	assert.Equal(t, 0, calls["POST "+orderURL])
}

func TestClient_SubmitOrder_RetriesTransient(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "").Then(orderResponder()))

	order, err := c.SubmitOrder(context.Background(), testOrder())

	require.NoError(t, err)
	assert.Equal(t, "abc-123", order.OrderTrackingID)
	assert.Equal(t, 2, mt.GetCallCountInfo()["POST "+orderURL])
}

func TestClient_SubmitOrder_GivesUpAfterAttempts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, httpmock.NewStringResponder(http.StatusBadGateway, ""))

	_, err := c.SubmitOrder(context.Background(), testOrder())

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Equal(t, 3, mt.GetCallCountInfo()["POST "+orderURL])
}

func TestClient_SubmitOrder_RejectionNotRetried(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, httpmock.NewJsonResponderOrPanic(http.StatusBadRequest, map[string]any{
		"error": map[string]any{"code": "invalid_currency", "message": "Currency not supported"},
	}))

	_, err := c.SubmitOrder(context.Background(), testOrder())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderRejected)
	assert.False(t, IsTransient(err))
	assert.Equal(t, 1, mt.GetCallCountInfo()["POST "+orderURL])
}

func TestClient_Unauthorized_InvalidatesToken(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL,
		httpmock.NewStringResponder(http.StatusUnauthorized, "").Then(orderResponder()))

	_, err := c.SubmitOrder(context.Background(), testOrder())

	require.NoError(t, err)
	assert.Equal(t, 2, mt.GetCallCountInfo()["POST "+tokenURL])
}

func TestClient_NetworkError_IsTransient(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, orderURL, httpmock.NewErrorResponder(io.ErrUnexpectedEOF))

	_, err := c.SubmitOrder(context.Background(), testOrder())

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClient_GetTransactionStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		expected domain.PaymentStatus
		code     string
	}{
		{
			name: "completed",
			body: map[string]any{
				"payment_method":             "MpesaKE",
				"amount":                     10000,
				"confirmation_code":          "QK12345",
				"payment_status_description": "Completed",
				"status_code":                1,
				"merchant_reference":         "NA-1",
				"currency":                   "KES",
				"status":                     "200",
			},
			expected: domain.PaymentStatusCompleted,
			code:     "QK12345",
		},
		{
			name: "pending with error object",
			body: map[string]any{
				"payment_status_description": "INVALID",
				"status_code":                0,
				"merchant_reference":         "NA-1",
				"error": map[string]any{
					"error_type": "api_error",
					"code":       "payment_details_not_found",
					"message":    "Pending Payment",
				},
				"status": "500",
			},
			expected: domain.PaymentStatusPending,
		},
		{
			name: "failed",
			body: map[string]any{
				"payment_status_description": "Failed",
				"status_code":                2,
			},
			expected: domain.PaymentStatusFailed,
		},
		{
			name: "reversed",
			body: map[string]any{
				"payment_status_description": "Reversed",
				"status_code":                3,
			},
			expected: domain.PaymentStatusReversed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			c, mt := newTestClient(t, clock)

			mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
			mt.RegisterResponderWithQuery(http.MethodGet, statusURL, "orderTrackingId=abc-123",
				httpmock.NewJsonResponderOrPanic(http.StatusOK, tt.body))

			st, err := c.GetTransactionStatus(context.Background(), "abc-123")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, st.Status)
			assert.Equal(t, "abc-123", st.OrderTrackingID)
			assert.Equal(t, tt.code, st.ConfirmationCode)
			assert.NotEmpty(t, st.Raw)
		})
	}
}

func TestClient_GetTransactionStatus_ErrorWithoutStatus(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponderWithQuery(http.MethodGet, statusURL, "orderTrackingId=nope",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"error": map[string]any{"code": "invalid_order_tracking_id", "message": "Invalid tracking id"},
		}))

	_, err := c.GetTransactionStatus(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrProviderRejected)
}

func TestClient_RegisterIPN(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, mt := newTestClient(t, clock)

	var sent ipnRequest
	mt.RegisterResponder(http.MethodPost, tokenURL, tokenResponder(clock))
	mt.RegisterResponder(http.MethodPost, ipnURL, func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &sent))
		return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
			"url":        sent.URL,
			"ipn_id":     "ipn-42",
			"ipn_status": 1,
		})
	})

	id, err := c.RegisterIPN(context.Background(), "https://natuasili.test/api/payments/ipn")

	require.NoError(t, err)
	assert.Equal(t, "ipn-42", id)
	assert.Equal(t, http.MethodGet, sent.IPNNotificationType)
}

func TestParseExpiry(t *testing.T) {
	assert.Equal(t, time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC), parseExpiry("2026-03-01T10:05:00.1234567Z").Truncate(time.Second))
	assert.Equal(t, time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC), parseExpiry("2026-03-01T10:05:00"))
	assert.True(t, parseExpiry("garbage").IsZero())
}
