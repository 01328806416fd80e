package enums

import "fmt"

// JobStatus tracks whether a service job is still on the floor.
type JobStatus string

const (
	JobStatusOngoing JobStatus = "Ongoing"
	JobStatusDone    JobStatus = "Done"
)

var validJobStatuses = []JobStatus{
	JobStatusOngoing,
	JobStatusDone,
}

// String returns the literal string for the status.
func (j JobStatus) String() string {
	return string(j)
}

// IsValid reports whether the status is known.
func (j JobStatus) IsValid() bool {
	for _, candidate := range validJobStatuses {
		if candidate == j {
			return true
		}
	}
	return false
}

// ParseJobStatus converts raw input into a JobStatus.
func ParseJobStatus(value string) (JobStatus, error) {
	for _, candidate := range validJobStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid job status %q", value)
}
