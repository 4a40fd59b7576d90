package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/PROD-001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"productId":"PROD-001","name":"Laptop","price":999.99,"description":"High-performance laptop","stock":50,"serviceVersion":"v1","timestamp":1700000000000}`))
	}))
	defer srv.Close()

	c := NewProductClient(srv.URL, hclog.NewNullLogger())
	product := c.GetProduct(context.Background(), "PROD-001")

	assert.Equal(t, "PROD-001", product.ProductID)
	assert.Equal(t, "Laptop", product.Name)
	assert.Equal(t, 999.99, product.Price)
	assert.Equal(t, 50, product.Stock)
	assert.Empty(t, product.Err)
}

func TestGetProductFallback(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"Non-2xx status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Product not found", http.StatusNotFound)
			},
		},
		{
			"Undecodable body",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewProductClient(srv.URL, hclog.NewNullLogger())
			product := c.GetProduct(context.Background(), "PROD-404")

			assert.Equal(t, "PROD-404", product.ProductID)
			assert.Equal(t, "Product Not Available", product.Name)
			assert.Equal(t, 0.0, product.Price)
			assert.NotEmpty(t, product.Err)
		})
	}
}

func TestGetProductConnectionRefused(t *testing.T) {
	// a server that is immediately closed leaves a port nothing listens on
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewProductClient(url, hclog.NewNullLogger())
	product := c.GetProduct(context.Background(), "PROD-001")

	assert.Equal(t, "Product Not Available", product.Name)
	assert.Equal(t, 0.0, product.Price)
	assert.NotEmpty(t, product.Err)
}

func TestGetProductCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewProductClient(srv.URL, hclog.NewNullLogger())
	product := c.GetProduct(ctx, "PROD-001")

	assert.Equal(t, "Product Not Available", product.Name)
	assert.NotEmpty(t, product.Err)
}
