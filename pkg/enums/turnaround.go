package enums

import "fmt"

// TurnaroundCategory groups production speed tiers for display.
type TurnaroundCategory string

const (
	TurnaroundCategoryEconomy  TurnaroundCategory = "economy"
	TurnaroundCategoryStandard TurnaroundCategory = "standard"
	TurnaroundCategoryRush     TurnaroundCategory = "rush"
	TurnaroundCategoryNextDay  TurnaroundCategory = "next_day"
)

var validTurnaroundCategories = []TurnaroundCategory{
	TurnaroundCategoryEconomy,
	TurnaroundCategoryStandard,
	TurnaroundCategoryRush,
	TurnaroundCategoryNextDay,
}

// String implements fmt.Stringer.
func (c TurnaroundCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known TurnaroundCategory.
func (c TurnaroundCategory) IsValid() bool {
	for _, candidate := range validTurnaroundCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseTurnaroundCategory converts raw input into a TurnaroundCategory.
func ParseTurnaroundCategory(value string) (TurnaroundCategory, error) {
	for _, candidate := range validTurnaroundCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid turnaround category %q", value)
}

// TurnaroundFeeModel defines how a turnaround tier charges its fee.
type TurnaroundFeeModel string

const (
	TurnaroundFeeModelFlat       TurnaroundFeeModel = "flat"
	TurnaroundFeeModelPercentage TurnaroundFeeModel = "percentage"
)

var validTurnaroundFeeModels = []TurnaroundFeeModel{
	TurnaroundFeeModelFlat,
	TurnaroundFeeModelPercentage,
}

// String implements fmt.Stringer.
func (m TurnaroundFeeModel) String() string {
	return string(m)
}

// IsValid reports whether the value is a known TurnaroundFeeModel.
func (m TurnaroundFeeModel) IsValid() bool {
	for _, candidate := range validTurnaroundFeeModels {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseTurnaroundFeeModel converts raw input into a TurnaroundFeeModel.
func ParseTurnaroundFeeModel(value string) (TurnaroundFeeModel, error) {
	for _, candidate := range validTurnaroundFeeModels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid turnaround fee model %q", value)
}
