package cart

import (
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/format"
	"github.com/skibidoo/storefront/pkg/i18n"
)

type CartItemView struct {
	backend.CartItem
	FormattedUnitPrice  string `json:"formattedUnitPrice"`
	FormattedTotalPrice string `json:"formattedTotalPrice"`
}

// CartView is the cart as the cart page renders it. Amounts are passed
// through from the backend and only formatted here.
type CartView struct {
	ID                string         `json:"id"`
	Items             []CartItemView `json:"items"`
	ItemCount         int            `json:"itemCount"`
	ItemCountLabel    string         `json:"itemCountLabel"`
	Empty             bool           `json:"empty"`
	EmptyMessage      string         `json:"emptyMessage,omitempty"`
	Subtotal          int64          `json:"subtotal"`
	Shipping          int64          `json:"shipping"`
	Discount          int64          `json:"discount"`
	Total             int64          `json:"total"`
	FormattedSubtotal string         `json:"formattedSubtotal"`
	FormattedShipping string         `json:"formattedShipping"`
	FormattedDiscount string         `json:"formattedDiscount"`
	FormattedTotal    string         `json:"formattedTotal"`
}

func newCartView(cart backend.Cart, t i18n.Translator) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			CartItem:            item,
			FormattedUnitPrice:  format.Price(item.UnitPrice),
			FormattedTotalPrice: format.Price(item.TotalPrice),
		})
	}

	view := CartView{
		ID:                cart.ID,
		Items:             items,
		ItemCount:         cart.ItemCount,
		ItemCountLabel:    t("cart.itemCount", map[string]any{"count": cart.ItemCount}),
		Empty:             len(items) == 0,
		Subtotal:          cart.Subtotal,
		Shipping:          cart.Shipping,
		Discount:          cart.Discount,
		Total:             cart.Total,
		FormattedSubtotal: format.Price(cart.Subtotal),
		FormattedShipping: format.Price(cart.Shipping),
		FormattedDiscount: format.Price(cart.Discount),
		FormattedTotal:    format.Price(cart.Total),
	}
	if view.Empty {
		view.EmptyMessage = t("cart.empty", nil)
	}
	return view
}
