package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/order/client"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d+$`)

// newTestServer wires the order service against the product service at
// productURL, which may point at a stub or at nothing at all.
func newTestServer(t *testing.T, productURL string) *httptest.Server {
	t.Helper()

	logger := hclog.NewNullLogger()
	pc := client.NewProductClient(productURL, logger)
	oh := NewOrderHandler(pc, validation.NewValidation(), logger)

	srv := httptest.NewServer(NewRouter(oh, logger))
	t.Cleanup(srv.Close)

	return srv
}

func stubProductService(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/PROD-001" {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"productId":"PROD-001","name":"Laptop","price":999.99,"description":"High-performance laptop","stock":50,"serviceVersion":"v1","timestamp":1700000000000}`))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func createOrder(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/orders/create", "application/json",
		bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}

	return resp, decoded
}

func TestCreateOrderHappyPath(t *testing.T) {
	products := stubProductService(t)
	srv := newTestServer(t, products.URL)
	t.Setenv("SERVICE_VERSION", "")

	resp, order := createOrder(t, srv, `{"productId":"PROD-001","quantity":2}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Regexp(t, orderIDPattern, order["orderId"])
	assert.Equal(t, "PROD-001", order["productId"])
	assert.Equal(t, "Laptop", order["productName"])
	assert.Equal(t, float64(2), order["quantity"])
	assert.Equal(t, 999.99, order["price"])
	assert.InDelta(t, 1999.98, order["total"], 1e-9)
	assert.Equal(t, "created", order["status"])
	assert.Equal(t, "v1", order["serviceVersion"])
}

func TestCreateOrderFallback(t *testing.T) {
	// point the client at a port nothing listens on
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	srv := newTestServer(t, deadURL)

	resp, order := createOrder(t, srv, `{"productId":"PROD-001","quantity":2}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product Not Available", order["productName"])
	assert.Equal(t, 0.0, order["price"])
	assert.Equal(t, 0.0, order["total"])
	assert.Equal(t, "created", order["status"])

	// the fallback's error message must not leak into the order
	_, present := order["error"]
	assert.False(t, present)
}

func TestCreateOrderUpstream404StillCreates(t *testing.T) {
	products := stubProductService(t)
	srv := newTestServer(t, products.URL)

	resp, order := createOrder(t, srv, `{"productId":"PROD-999","quantity":3}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product Not Available", order["productName"])
	assert.Equal(t, 0.0, order["total"])
	assert.Equal(t, "created", order["status"])
}

func TestCreateOrderMalformedBody(t *testing.T) {
	products := stubProductService(t)
	srv := newTestServer(t, products.URL)

	testCases := []struct {
		name string
		body string
	}{
		{"Not JSON", "not json"},
		{"Missing productId", `{"quantity":2}`},
		{"Missing quantity", `{"productId":"PROD-001"}`},
		{"Zero quantity", `{"productId":"PROD-001","quantity":0}`},
		{"Mistyped quantity", `{"productId":"PROD-001","quantity":"two"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := createOrder(t, srv, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestTestEndpoint(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")
	t.Setenv("SERVICE_VERSION", "v2")

	resp, err := http.Get(srv.URL + "/api/orders/test")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status TestStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))

	assert.Equal(t, "order-service", status.Service)
	assert.Equal(t, "v2", status.Version)
	assert.Equal(t, "healthy", status.Status)
	assert.Greater(t, status.Timestamp, int64(0))
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "http://localhost:0")
	t.Setenv("SERVICE_VERSION", "")

	resp, err := http.Get(srv.URL + "/api/orders/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))

	assert.Equal(t, "UP", health.Status)
	assert.Equal(t, "v1", health.Version)
}
