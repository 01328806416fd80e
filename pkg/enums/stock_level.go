package enums

import "fmt"

// StockLevel is the coarse restocking-urgency label attached to an item.
type StockLevel string

const (
	StockLevelCritical StockLevel = "Critical"
	StockLevelLow      StockLevel = "Low"
	StockLevelMedium   StockLevel = "Medium"
	StockLevelHigh     StockLevel = "High"
)

var validStockLevels = []StockLevel{
	StockLevelCritical,
	StockLevelLow,
	StockLevelMedium,
	StockLevelHigh,
}

// stockLevelPriority orders levels by restocking urgency. Unknown labels sort
// after every known one.
var stockLevelPriority = map[StockLevel]int{
	StockLevelCritical: 0,
	StockLevelLow:      1,
	StockLevelMedium:   2,
	StockLevelHigh:     3,
}

// String returns the literal string for the level.
func (s StockLevel) String() string {
	return string(s)
}

// IsValid reports whether the level is known.
func (s StockLevel) IsValid() bool {
	for _, candidate := range validStockLevels {
		if candidate == s {
			return true
		}
	}
	return false
}

// Priority returns the fixed sort priority for the level; unknown labels get
// a priority after all known ones.
func (s StockLevel) Priority() int {
	if p, ok := stockLevelPriority[s]; ok {
		return p
	}
	return len(stockLevelPriority)
}

// StockLevels returns every known level in priority order.
func StockLevels() []StockLevel {
	out := make([]StockLevel, len(validStockLevels))
	copy(out, validStockLevels)
	return out
}

// ParseStockLevel converts raw input into a StockLevel.
func ParseStockLevel(value string) (StockLevel, error) {
	for _, candidate := range validStockLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock level %q", value)
}
