package catalog

import (
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/format"
	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/types"
)

// ProductView decorates a backend product with the strings product cards and
// detail pages display.
type ProductView struct {
	backend.Product
	FormattedPrice          string  `json:"formattedPrice"`
	FormattedCompareAtPrice *string `json:"formattedCompareAtPrice,omitempty"`
	BasePriceLabel          *string `json:"basePriceLabel,omitempty"`
	DeliveryLabel           *string `json:"deliveryLabel,omitempty"`
	InStock                 bool    `json:"inStock"`
	AvailabilityLabel       string  `json:"availabilityLabel"`
}

type ProductListView struct {
	Products []ProductView  `json:"products"`
	Meta     types.PageMeta `json:"meta"`
}

type CategoryView struct {
	backend.Category
	Products []ProductView `json:"products,omitempty"`
}

func newProductView(p backend.Product, t i18n.Translator) ProductView {
	view := ProductView{
		Product:        p,
		FormattedPrice: format.Price(p.Price),
		InStock:        p.Stock > 0,
	}
	if p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price {
		s := format.Price(*p.CompareAtPrice)
		view.FormattedCompareAtPrice = &s
	}
	if p.BasePrice != nil {
		s := format.BasePrice(*p.BasePrice)
		view.BasePriceLabel = &s
	}
	if p.DeliveryTime != nil && p.DeliveryTime.Name != "" {
		s := t("product.deliveryTime", map[string]any{"time": format.DeliveryTime(*p.DeliveryTime)})
		view.DeliveryLabel = &s
	}
	if view.InStock {
		view.AvailabilityLabel = t("product.inStock", nil)
	} else {
		view.AvailabilityLabel = t("product.outOfStock", nil)
	}
	if view.Images == nil {
		view.Images = []backend.Image{}
	}
	return view
}

func newProductViews(products []backend.Product, t i18n.Translator) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		if !p.Status.IsListable() {
			continue
		}
		out = append(out, newProductView(p, t))
	}
	return out
}
