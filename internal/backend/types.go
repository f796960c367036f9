package backend

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skibidoo/storefront/pkg/enums"
	"github.com/skibidoo/storefront/pkg/types"
)

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product mirrors the backend product record. Prices are cents.
type Product struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Slug           string              `json:"slug"`
	Description    *string             `json:"description"`
	Price          int64               `json:"price"`
	CompareAtPrice *int64              `json:"compareAtPrice"`
	SKU            *string             `json:"sku"`
	Stock          int                 `json:"stock"`
	Status         enums.ProductStatus `json:"status"`
	Images         []Image             `json:"images"`
	DeliveryTime   *types.DeliveryTime `json:"deliveryTime"`
	BasePrice      *types.BasePrice    `json:"basePrice"`
	UpdatedAt      string              `json:"updatedAt,omitempty"`
}

// LastModified parses UpdatedAt when the backend supplies it.
func (p Product) LastModified() (time.Time, bool) {
	return parseTimestamp(p.UpdatedAt)
}

// Category mirrors a backend category; Children is populated for trees.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	ParentID    *string    `json:"parentId"`
	Children    []Category `json:"children,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

func (c Category) LastModified() (time.Time, bool) {
	return parseTimestamp(c.UpdatedAt)
}

// Flatten returns the categories and all their descendants, parents first.
func Flatten(categories []Category) []Category {
	out := make([]Category, 0, len(categories))
	var walk func([]Category)
	walk = func(nodes []Category) {
		for _, node := range nodes {
			out = append(out, node)
			walk(node.Children)
		}
	}
	walk(categories)
	return out
}

type CartItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ProductSlug string  `json:"productSlug"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	TotalPrice  int64   `json:"totalPrice"`
	Image       *string `json:"image"`
}

// Cart is owned by the backend. Totals are displayed as received and never
// recomputed here.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Subtotal  int64      `json:"subtotal"`
	Shipping  int64      `json:"shipping"`
	Discount  int64      `json:"discount"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// ProductFilter narrows product listings. Zero values are omitted from the
// backend query.
type ProductFilter struct {
	Page       int
	Limit      int
	CategoryID string
	Search     string
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if v := strings.TrimSpace(f.CategoryID); v != "" {
		q.Set("category", v)
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		q.Set("search", v)
	}
	return q
}

// AddItemInput adds a product to a cart. A nil CartID asks the backend to
// create a new cart.
type AddItemInput struct {
	CartID    *string `json:"cartId"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
}

type UpdateItemInput struct {
	CartID   string `json:"cartId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type RemoveItemInput struct {
	CartID string `json:"cartId"`
	ItemID string `json:"itemId"`
}

// CheckoutInput is the order submission forwarded to the backend.
// BillingAddress is nil when billing matches shipping.
type CheckoutInput struct {
	CartID          string         `json:"cartId"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	ShippingAddress types.Address  `json:"shippingAddress"`
	BillingAddress  *types.Address `json:"billingAddress,omitempty"`
	ShippingMethod  string         `json:"shippingMethod"`
	PaymentMethod   string         `json:"paymentMethod"`
}

type CheckoutResult struct {
	OrderNumber string `json:"orderNumber"`
	PaymentURL  string `json:"paymentUrl,omitempty"`
}

func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
