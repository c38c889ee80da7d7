package enums

import "fmt"

// SubOptionFieldType describes the input widget a sub-option renders as.
type SubOptionFieldType string

const (
	SubOptionFieldTypeSelect   SubOptionFieldType = "select"
	SubOptionFieldTypeText     SubOptionFieldType = "text"
	SubOptionFieldTypeNumber   SubOptionFieldType = "number"
	SubOptionFieldTypeTextarea SubOptionFieldType = "textarea"
)

var validSubOptionFieldTypes = []SubOptionFieldType{
	SubOptionFieldTypeSelect,
	SubOptionFieldTypeText,
	SubOptionFieldTypeNumber,
	SubOptionFieldTypeTextarea,
}

// String implements fmt.Stringer.
func (t SubOptionFieldType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known SubOptionFieldType.
func (t SubOptionFieldType) IsValid() bool {
	for _, candidate := range validSubOptionFieldTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseSubOptionFieldType converts raw input into a SubOptionFieldType.
func ParseSubOptionFieldType(value string) (SubOptionFieldType, error) {
	for _, candidate := range validSubOptionFieldTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sub-option field type %q", value)
}
