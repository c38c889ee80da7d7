package enums

import "fmt"

// AddOnCategory groups optional services for display and reporting.
type AddOnCategory string

const (
	AddOnCategoryFinishing AddOnCategory = "finishing"
	AddOnCategoryMailing   AddOnCategory = "mailing"
	AddOnCategoryDesign    AddOnCategory = "design"
	AddOnCategoryPackaging AddOnCategory = "packaging"
	AddOnCategoryProofing  AddOnCategory = "proofing"
)

var validAddOnCategories = []AddOnCategory{
	AddOnCategoryFinishing,
	AddOnCategoryMailing,
	AddOnCategoryDesign,
	AddOnCategoryPackaging,
	AddOnCategoryProofing,
}

// String implements fmt.Stringer.
func (c AddOnCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known AddOnCategory.
func (c AddOnCategory) IsValid() bool {
	for _, candidate := range validAddOnCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseAddOnCategory converts raw input into an AddOnCategory.
func ParseAddOnCategory(value string) (AddOnCategory, error) {
	for _, candidate := range validAddOnCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid add-on category %q", value)
}
