// Package client holds the order service's outbound call to the product
// service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// defaultTimeout bounds the outbound product lookup.
const defaultTimeout = 3 * time.Second

// fallbackName is the placeholder name reported when the product service
// cannot be reached.
const fallbackName = "Product Not Available"

// Product is the product service's single-product response as seen by the
// order service. Err is only set on the fallback and is never forwarded to
// the order caller.
type Product struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
	Stock          int     `json:"stock"`
	ServiceVersion string  `json:"serviceVersion"`
	Timestamp      int64   `json:"timestamp"`
	Err            string  `json:"error,omitempty"`
}

// ProductClient fetches products from the product service. It is safe for
// concurrent use.
type ProductClient struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

func NewProductClient(baseURL string, logger hclog.Logger) *ProductClient {
	return &ProductClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// GetProduct looks up productID on the product service. Any failure of the
// outbound call, whether connection, status, decode or timeout, is absorbed
// into a fallback product carrying price zero and the failure message. The
// call blocks until the response is decoded or classified as failed, and is
// cancelled with ctx.
func (c *ProductClient) GetProduct(ctx context.Context, productID string) *Product {
	url := fmt.Sprintf("%s/api/products/%s", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fallback(productID, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fallback(productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fallback(productID, fmt.Errorf("unexpected status %d from product service", resp.StatusCode))
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return c.fallback(productID, err)
	}

	return &product
}

func (c *ProductClient) fallback(productID string, err error) *Product {
	c.logger.Warn("Product lookup failed, using fallback",
		"product_id", productID,
		"error", err,
	)

	return &Product{
		ProductID: productID,
		Name:      fallbackName,
		Price:     0.0,
		Err:       err.Error(),
	}
}
