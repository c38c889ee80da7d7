package enums

import "fmt"

// AddOnPricingModel defines how an add-on charge is computed.
type AddOnPricingModel string

const (
	AddOnPricingModelFlat       AddOnPricingModel = "flat"
	AddOnPricingModelPercentage AddOnPricingModel = "percentage"
	AddOnPricingModelPerUnit    AddOnPricingModel = "per_unit"
)

var validAddOnPricingModels = []AddOnPricingModel{
	AddOnPricingModelFlat,
	AddOnPricingModelPercentage,
	AddOnPricingModelPerUnit,
}

// String implements fmt.Stringer.
func (m AddOnPricingModel) String() string {
	return string(m)
}

// IsValid reports whether the value is a known AddOnPricingModel.
func (m AddOnPricingModel) IsValid() bool {
	for _, candidate := range validAddOnPricingModels {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseAddOnPricingModel converts raw input into an AddOnPricingModel.
func ParseAddOnPricingModel(value string) (AddOnPricingModel, error) {
	for _, candidate := range validAddOnPricingModels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid add-on pricing model %q", value)
}
