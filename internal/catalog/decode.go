package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/stridewear/stride/internal/domain"
)

// decodeProductList normalizes the two response shapes the catalog service
// is known to produce for product listings: a bare array, or an object with
// a "products" field. Anything else is a decode error, not an empty list;
// callers distinguish "failed" from "empty".
func decodeProductList(body []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(body, &products); err == nil {
		return products, nil
	}

	var wrapped struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products, nil
	}

	return nil, fmt.Errorf("unrecognized product list shape: %s", snippet(body))
}

// snippet truncates a body for inclusion in error messages.
func snippet(body []byte) string {
	const max = 120
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
