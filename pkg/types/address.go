package types

// Address is a postal address submitted during checkout and forwarded to the
// backend verbatim.
type Address struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Company   string `json:"company,omitempty"`
	Street    string `json:"street" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	City      string `json:"city" validate:"required"`
	Country   string `json:"country" validate:"required"`
}
