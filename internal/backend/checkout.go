package backend

import (
	"context"
	"net/http"
	"strings"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
)

const opCheckout = "checkout.submit"

// CheckoutService submits orders.
type CheckoutService interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

// Checkout submits the order. Rejections carry the backend's message, see
// RejectionMessage. The request is never retried.
func (c *Client) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if strings.TrimSpace(input.CartID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	var result CheckoutResult
	if err := c.do(ctx, opCheckout, http.MethodPost, "/api/checkout", nil, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
