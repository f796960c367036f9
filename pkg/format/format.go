// Package format renders prices and product attributes for German-language
// storefront pages.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/skibidoo/storefront/pkg/enums"
	"github.com/skibidoo/storefront/pkg/types"
)

// euroSuffix matches de-DE currency output: a no-break space before the sign.
const euroSuffix = "\u00a0€"

var displayLocale = language.German

var unitLabels = map[enums.Unit]string{
	enums.UnitKilogram:   "kg",
	enums.UnitGram:       "g",
	enums.UnitLiter:      "l",
	enums.UnitMilliliter: "ml",
	enums.UnitMeter:      "m",
	enums.UnitCentimeter: "cm",
	enums.UnitPiece:      "Stück",
}

// Price formats an amount in cents as euros, e.g. 123456 -> "1.234,56 €".
// The conversion stays exact for every int64 amount.
func Price(cents int64) string {
	amount := decimal.NewFromInt(cents).Shift(-2)
	whole, fraction, _ := strings.Cut(amount.Abs().StringFixed(2), ".")

	// |MinInt64| / 100 still fits in int64.
	units, _ := strconv.ParseInt(whole, 10, 64)
	p := message.NewPrinter(displayLocale)
	out := p.Sprintf("%v", number.Decimal(units)) + "," + fraction + euroSuffix
	if amount.IsNegative() {
		return "-" + out
	}
	return out
}

// UnitLabel returns the display label for a unit code. Unknown codes are
// returned unchanged.
func UnitLabel(unit string) string {
	if label, ok := unitLabels[enums.Unit(unit)]; ok {
		return label
	}
	return unit
}

// BasePrice renders "<price> / <referenceQuantity> <unit>".
func BasePrice(bp types.BasePrice) string {
	return Price(bp.PricePerUnit) + " / " + strconv.FormatFloat(bp.ReferenceQuantity, 'f', -1, 64) + " " + UnitLabel(bp.Unit)
}

// DeliveryTime returns the delivery estimate's display name.
func DeliveryTime(dt types.DeliveryTime) string {
	return dt.Name
}
