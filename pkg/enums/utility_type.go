package enums

import "fmt"

// UtilityType classifies a utility account.
type UtilityType string

const (
	UtilityTypeElectricity UtilityType = "Electricity"
	UtilityTypeWater       UtilityType = "Water"
	UtilityTypeInternet    UtilityType = "Internet"
	UtilityTypeTelephone   UtilityType = "Telephone"
	UtilityTypeOther       UtilityType = "Other"
)

var validUtilityTypes = []UtilityType{
	UtilityTypeElectricity,
	UtilityTypeWater,
	UtilityTypeInternet,
	UtilityTypeTelephone,
	UtilityTypeOther,
}

// String returns the literal string for the type.
func (u UtilityType) String() string {
	return string(u)
}

// IsValid reports whether the type is known.
func (u UtilityType) IsValid() bool {
	for _, candidate := range validUtilityTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUtilityType converts raw input into a UtilityType.
func ParseUtilityType(value string) (UtilityType, error) {
	for _, candidate := range validUtilityTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid utility type %q", value)
}
