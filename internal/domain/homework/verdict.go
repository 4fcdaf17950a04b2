// internal/domain/homework/verdict.go
package homework

import "fmt"

// Status represents a review status reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every valid review status to its human-readable verdict text.
// The set of valid statuses is exactly the key set of this table.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus extracts the homework name and review status from a single raw
// homework record and returns the notification text for it. It fails with
// ErrHomeworkFieldMissing if the record is not an object or lacks a required
// field, and with ErrUnknownStatus if the status has no verdict.
func ParseStatus(record any) (string, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: record is %T, not an object", ErrHomeworkFieldMissing, record)
	}

	name, ok := fields["homework_name"].(string)
	if !ok {
		return "", fmt.Errorf("%w: homework_name", ErrHomeworkFieldMissing)
	}

	status, ok := fields["status"].(string)
	if !ok {
		return "", fmt.Errorf("%w: status", ErrHomeworkFieldMissing)
	}

	verdict, ok := Verdicts[Status(status)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
