package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/internal/client"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(&subchain.Config{
		BaseURL:      server.URL,
		AccessToken:  "test-access",
		RefreshToken: "test-refresh",
	})
	require.NoError(t, err)

	return c, server
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, subchain.ErrConfigRequired)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&subchain.Config{})
		require.ErrorIs(t, err, subchain.ErrBaseURLRequired)
	})

	t.Run("without tokens the session starts empty", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&subchain.Config{BaseURL: "https://api.subchain.example"})
		require.NoError(t, err)
		assert.False(t, c.IsAuthenticated())
	})
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Empty(t, request.Header.Get("Authorization"))

		var payload subchain.LoginRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
		assert.Equal(t, "merchant@example.com", payload.Email)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access":  "session-access",
			"refresh": "session-refresh",
			"user":    map[string]interface{}{"id": 7, "email": "merchant@example.com"},
		})
	})
	mux.HandleFunc("/api/auth/profile/", func(writer http.ResponseWriter, request *http.Request) {
		// Subsequent calls carry the token from login.
		assert.Equal(t, "Bearer session-access", request.Header.Get("Authorization"))
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 7, "email": "merchant@example.com"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c, err := client.New(&subchain.Config{BaseURL: server.URL})
	require.NoError(t, err)
	assert.False(t, c.IsAuthenticated())

	ctx := context.Background()

	resp, err := c.Login(ctx, &subchain.LoginRequest{Email: "merchant@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "merchant@example.com", resp.User.Email)
	assert.True(t, c.IsAuthenticated())

	user, err := c.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()

	t.Run("posts the refresh token and clears local state", func(t *testing.T) {
		t.Parallel()

		var logoutCalled bool

		mux := http.NewServeMux()
		mux.HandleFunc("/api/auth/logout/", func(writer http.ResponseWriter, request *http.Request) {
			logoutCalled = true

			var payload map[string]string

			require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
			assert.Equal(t, "test-refresh", payload["refresh"])
			writer.WriteHeader(http.StatusNoContent)
		})

		c, _ := newTestClient(t, mux)

		require.NoError(t, c.Logout(context.Background()))
		assert.True(t, logoutCalled)
		assert.False(t, c.IsAuthenticated())
	})

	t.Run("succeeds even when the server call fails", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))

		require.NoError(t, c.Logout(context.Background()))
		assert.False(t, c.IsAuthenticated())
	})
}

func TestClient_ListNormalization(t *testing.T) {
	t.Parallel()

	t.Run("paginated envelope", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/subscriptions/plans/", request.URL.Path)
			_, _ = writer.Write([]byte(`{
				"count": 12,
				"next": "http://example.com/api/subscriptions/plans/?page=2",
				"previous": null,
				"results": [{"id": 1, "name": "Starter"}]
			}`))
		}))

		plans, err := c.Plans().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, plans.Count)
		require.NotNil(t, plans.Next)
		assert.Nil(t, plans.Previous)
		require.Len(t, plans.Results, 1)
		assert.Equal(t, "Starter", plans.Results[0].Name)
	})

	t.Run("bare array is wrapped in an envelope", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[{"id": 1, "name": "Starter"}, {"id": 2, "name": "Pro"}]`))
		}))

		plans, err := c.Plans().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, plans.Count)
		assert.Nil(t, plans.Next)
		assert.Nil(t, plans.Previous)
		require.Len(t, plans.Results, 2)
		assert.Equal(t, "Pro", plans.Results[1].Name)
	})

	t.Run("envelope with null results yields an empty slice", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"count": 0, "results": null}`))
		}))

		plans, err := c.Plans().List(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, plans.Results)
		assert.Empty(t, plans.Results)
	})
}

func TestPlansClient_CRUD(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/subscriptions/plans/", func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`[]`))
		case http.MethodPost:
			var payload subchain.PlanCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
			assert.Equal(t, "Starter", payload.Name)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id": 1, "name": "Starter", "amount": "10", "currency": "ALGO"}`))
		}
	})
	mux.HandleFunc("/api/subscriptions/plans/1/", func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			_, _ = writer.Write([]byte(`{"id": 1, "name": "Starter"}`))
		case http.MethodPatch:
			var payload subchain.PlanUpdateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
			require.NotNil(t, payload.Amount)

			_, _ = writer.Write([]byte(`{"id": 1, "name": "Starter", "amount": "15"}`))
		case http.MethodDelete:
			writer.WriteHeader(http.StatusNoContent)
		}
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	created, err := c.Plans().Create(ctx, &subchain.PlanCreateRequest{
		Name: "Starter", Amount: "10", Currency: "ALGO", Interval: "monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := c.Plans().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Starter", got.Name)

	amount := "15"
	updated, err := c.Plans().Update(ctx, 1, &subchain.PlanUpdateRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "15", updated.Amount)

	require.NoError(t, c.Plans().Delete(ctx, 1))
}

func TestSubscriptionsClient_Actions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		call   func(ctx context.Context, c *client.Client) (*subchain.Subscription, error)
		path   string
		status string
	}{
		{
			name: "cancel",
			call: func(ctx context.Context, c *client.Client) (*subchain.Subscription, error) {
				return c.Subscriptions().Cancel(ctx, 3)
			},
			path:   "/api/subscriptions/subscriptions/3/cancel/",
			status: subchain.SubscriptionStatusCanceled,
		},
		{
			name: "resume",
			call: func(ctx context.Context, c *client.Client) (*subchain.Subscription, error) {
				return c.Subscriptions().Resume(ctx, 3)
			},
			path:   "/api/subscriptions/subscriptions/3/resume/",
			status: subchain.SubscriptionStatusActive,
		},
		{
			name: "activate",
			call: func(ctx context.Context, c *client.Client) (*subchain.Subscription, error) {
				return c.Subscriptions().Activate(ctx, 3)
			},
			path:   "/api/subscriptions/subscriptions/3/activate/",
			status: subchain.SubscriptionStatusActive,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := tt.path
			status := tt.status

			c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, path, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 3, "status": status})
			}))

			sub, err := tt.call(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, status, sub.Status)
		})
	}
}

func TestInvoicesClient_Pay(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/subscriptions/invoices/9/pay/", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var payload subchain.InvoicePayRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
		assert.Equal(t, "TXHASH123", payload.TxHash)

		_, _ = writer.Write([]byte(`{"id": 9, "number": "INV-009", "status": "paid"}`))
	}))

	invoice, err := c.Invoices().Pay(context.Background(), 9, &subchain.InvoicePayRequest{
		TxHash:  "TXHASH123",
		Network: "algorand",
	})
	require.NoError(t, err)
	assert.Equal(t, subchain.InvoiceStatusPaid, invoice.Status)
}

func TestPaymentsClient_QRCodeURL(t *testing.T) {
	t.Parallel()

	c, err := client.New(&subchain.Config{BaseURL: "https://api.subchain.example"})
	require.NoError(t, err)

	url := c.Payments().QRCodeURL("25", "ALGO")
	assert.Equal(t, "https://api.subchain.example/api/payments/qr/?amount=25&currency=ALGO", url)
}

func TestCurrencyClient_Convert(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/currency/convert/", request.URL.Path)
		assert.Equal(t, "USD", request.URL.Query().Get("from"))
		assert.Equal(t, "ALGO", request.URL.Query().Get("to"))
		assert.Equal(t, "100", request.URL.Query().Get("amount"))

		_, _ = writer.Write([]byte(`{"from": "USD", "to": "ALGO", "amount": "100", "converted": "645.20", "rate": "6.452"}`))
	}))

	conversion, err := c.Currency().Convert(context.Background(), "USD", "ALGO", "100")
	require.NoError(t, err)
	assert.Equal(t, "645.20", conversion.Converted)
}

func TestNotificationsClient_MarkAllRead(t *testing.T) {
	t.Parallel()

	t.Run("bulk endpoint available", func(t *testing.T) {
		t.Parallel()

		var bulkCalled bool

		mux := http.NewServeMux()
		mux.HandleFunc("/api/notifications/mark-all-read/", func(writer http.ResponseWriter, request *http.Request) {
			bulkCalled = true

			writer.WriteHeader(http.StatusNoContent)
		})

		c, _ := newTestClient(t, mux)

		require.NoError(t, c.Notifications().MarkAllRead(context.Background(), []int64{1, 2, 3}))
		assert.True(t, bulkCalled)
	})

	t.Run("404 falls back to per-notification updates", func(t *testing.T) {
		t.Parallel()

		var (
			mu      sync.Mutex
			patched = make(map[string]bool)
			mux     = http.NewServeMux()
		)

		mux.HandleFunc("/api/notifications/mark-all-read/", func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"detail": "not found"}`))
		})
		mux.HandleFunc("/api/notifications/", func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPatch, request.Method)

			var payload subchain.NotificationUpdateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
			require.NotNil(t, payload.IsRead)
			assert.True(t, *payload.IsRead)

			mu.Lock()
			patched[request.URL.Path] = true
			mu.Unlock()

			_, _ = writer.Write([]byte(`{"is_read": true}`))
		})

		c, _ := newTestClient(t, mux)

		require.NoError(t, c.Notifications().MarkAllRead(context.Background(), []int64{1, 2, 3}))
		assert.Len(t, patched, 3)
		assert.True(t, patched["/api/notifications/1/"])
		assert.True(t, patched["/api/notifications/2/"])
		assert.True(t, patched["/api/notifications/3/"])
	})

	t.Run("non-404 bulk failure is not retried per notification", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/notifications/mark-all-read/", request.URL.Path)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"detail": "boom"}`))
		}))

		err := c.Notifications().MarkAllRead(context.Background(), []int64{1})
		require.Error(t, err)
	})
}

func TestX402CreditSubscriptionsClient_Consume(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/x402/credit-subscriptions/5/consume/", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var payload subchain.X402ConsumeRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))
		assert.Equal(t, int64(2), payload.Credits)

		_, _ = writer.Write([]byte(`{"id": 5, "credits_remaining": 98, "status": "active"}`))
	}))

	sub, err := c.X402CreditSubscriptions().Consume(context.Background(), 5, &subchain.X402ConsumeRequest{
		Credits: 2,
		Path:    "/api/reports/daily",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(98), sub.CreditsRemaining)
}

func TestClient_ErrorContract(t *testing.T) {
	t.Parallel()

	t.Run("API errors carry the extracted message", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"detail": "plan not found"}`))
		}))

		_, err := c.Plans().Get(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, subchain.IsNotFound(err))

		var apiErr *subchain.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "plan not found", apiErr.Message)
	})

	t.Run("network failures are status-0 errors", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&subchain.Config{BaseURL: "http://127.0.0.1:1"})
		require.NoError(t, err)

		_, err = c.Plans().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, subchain.IsNetworkError(err))
	})
}
