package enums

import "fmt"

// AddOnPlacement names the display bucket an add-on occupies on the product
// configuration page, relative to the artwork upload widget.
type AddOnPlacement string

const (
	AddOnPlacementAboveUpload AddOnPlacement = "above_upload"
	AddOnPlacementBelowUpload AddOnPlacement = "below_upload"
)

var validAddOnPlacements = []AddOnPlacement{
	AddOnPlacementAboveUpload,
	AddOnPlacementBelowUpload,
}

// String implements fmt.Stringer.
func (p AddOnPlacement) String() string {
	return string(p)
}

// IsValid reports whether the value is a known AddOnPlacement.
func (p AddOnPlacement) IsValid() bool {
	for _, candidate := range validAddOnPlacements {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseAddOnPlacement converts raw input into an AddOnPlacement.
func ParseAddOnPlacement(value string) (AddOnPlacement, error) {
	for _, candidate := range validAddOnPlacements {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid add-on placement %q", value)
}
