package types

// BasePrice is the legally required unit price shown next to a product price,
// e.g. 19,90 € per 1 kg. Prices are minor units (cents).
type BasePrice struct {
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	ReferenceQuantity float64 `json:"referenceQuantity"`
	PricePerUnit      int64   `json:"pricePerUnit"`
}

// DeliveryTime is a named delivery estimate. Only Name is displayed.
type DeliveryTime struct {
	Name    string `json:"name"`
	MinDays int    `json:"minDays"`
	MaxDays int    `json:"maxDays"`
}
