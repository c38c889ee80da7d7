package enums

import "fmt"

// PaperStockType represents the substrate family a stock belongs to.
type PaperStockType string

const (
	PaperStockTypeText      PaperStockType = "text"
	PaperStockTypeCardstock PaperStockType = "cardstock"
	PaperStockTypeCover     PaperStockType = "cover"
)

var validPaperStockTypes = []PaperStockType{
	PaperStockTypeText,
	PaperStockTypeCardstock,
	PaperStockTypeCover,
}

// String implements fmt.Stringer.
func (t PaperStockType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known PaperStockType.
func (t PaperStockType) IsValid() bool {
	for _, candidate := range validPaperStockTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParsePaperStockType converts raw input into a PaperStockType.
func ParsePaperStockType(value string) (PaperStockType, error) {
	for _, candidate := range validPaperStockTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid paper stock type %q", value)
}
