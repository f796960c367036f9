package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
)

const (
	opGetCart    = "cart.get"
	opAddItem    = "cart.add"
	opUpdateItem = "cart.update"
	opRemoveItem = "cart.remove"
)

// CartService covers the cart operations the form handlers need.
type CartService interface {
	GetCart(ctx context.Context, cartID string) Cart
	AddToCart(ctx context.Context, input AddItemInput) (*Cart, error)
	UpdateCartItem(ctx context.Context, input UpdateItemInput) (*Cart, error)
	RemoveCartItem(ctx context.Context, input RemoveItemInput) (*Cart, error)
}

// EmptyCart is what cart reads degrade to.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// GetCart fetches the cart for cartID. An empty cartID asks the backend for a
// fresh cart. Failures yield an empty cart.
func (c *Client) GetCart(ctx context.Context, cartID string) Cart {
	var query url.Values
	if id := strings.TrimSpace(cartID); id != "" {
		query = url.Values{"cartId": []string{id}}
	}
	var cart Cart
	if err := c.do(ctx, opGetCart, http.MethodGet, "/api/cart", query, nil, &cart); err != nil {
		c.degraded(ctx, opGetCart, err)
		return EmptyCart()
	}
	if cart.Items == nil {
		cart.Items = []CartItem{}
	}
	return cart
}

// AddToCart adds a product. The returned cart carries the id to persist when
// the backend created a new cart.
func (c *Client) AddToCart(ctx context.Context, input AddItemInput) (*Cart, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	return c.writeCart(ctx, opAddItem, "/api/cart/add", input)
}

// UpdateCartItem sets the quantity of a line item.
func (c *Client) UpdateCartItem(ctx context.Context, input UpdateItemInput) (*Cart, error) {
	if err := requireCartItem(input.CartID, input.ItemID); err != nil {
		return nil, err
	}
	return c.writeCart(ctx, opUpdateItem, "/api/cart/update", input)
}

// RemoveCartItem deletes a line item.
func (c *Client) RemoveCartItem(ctx context.Context, input RemoveItemInput) (*Cart, error) {
	if err := requireCartItem(input.CartID, input.ItemID); err != nil {
		return nil, err
	}
	return c.writeCart(ctx, opRemoveItem, "/api/cart/remove", input)
}

func (c *Client) writeCart(ctx context.Context, op, path string, body any) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, op, http.MethodPost, path, nil, body, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []CartItem{}
	}
	return &cart, nil
}

func requireCartItem(cartID, itemID string) error {
	if strings.TrimSpace(cartID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if strings.TrimSpace(itemID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	return nil
}
