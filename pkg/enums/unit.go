package enums

// Unit is a measurement unit code used in base prices.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitMeter      Unit = "m"
	UnitCentimeter Unit = "cm"
	UnitPiece      Unit = "piece"
)

var validUnits = []Unit{
	UnitKilogram,
	UnitGram,
	UnitLiter,
	UnitMilliliter,
	UnitMeter,
	UnitCentimeter,
	UnitPiece,
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Unit.
func (u Unit) IsValid() bool {
	for _, candidate := range validUnits {
		if candidate == u {
			return true
		}
	}
	return false
}
