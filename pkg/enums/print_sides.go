package enums

import "fmt"

// PrintSides captures whether a product is printed on one or both sides.
type PrintSides string

const (
	PrintSidesSingle PrintSides = "single"
	PrintSidesDouble PrintSides = "double"
)

var validPrintSides = []PrintSides{
	PrintSidesSingle,
	PrintSidesDouble,
}

// String implements fmt.Stringer.
func (s PrintSides) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PrintSides.
func (s PrintSides) IsValid() bool {
	for _, candidate := range validPrintSides {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePrintSides converts raw input into a PrintSides.
func ParsePrintSides(value string) (PrintSides, error) {
	for _, candidate := range validPrintSides {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid print sides %q", value)
}
