package enums

import "fmt"

// RestockStatus tracks the lifecycle of a restock request.
type RestockStatus string

const (
	RestockStatusPending    RestockStatus = "Pending"
	RestockStatusInProgress RestockStatus = "In Progress"
	RestockStatusCompleted  RestockStatus = "Completed"
	RestockStatusCancelled  RestockStatus = "Cancelled"
)

var validRestockStatuses = []RestockStatus{
	RestockStatusPending,
	RestockStatusInProgress,
	RestockStatusCompleted,
	RestockStatusCancelled,
}

// String returns the literal string for the status.
func (r RestockStatus) String() string {
	return string(r)
}

// IsValid reports whether the status is known.
func (r RestockStatus) IsValid() bool {
	for _, candidate := range validRestockStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRestockStatus converts raw input into a RestockStatus.
func ParseRestockStatus(value string) (RestockStatus, error) {
	for _, candidate := range validRestockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid restock status %q", value)
}
