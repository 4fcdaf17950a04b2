// internal/domain/homework/response.go
package homework

import "fmt"

// CheckResponse validates a parsed status API response against the documented
// shape and returns the raw homework records. The three checks fail
// independently: the top-level value must be a JSON object, the object must
// contain the "homeworks" key, and that key's value must be a list.
func CheckResponse(response any) ([]any, error) {
	object, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrResponseNotObject, response)
	}

	raw, ok := object["homeworks"]
	if !ok {
		return nil, ErrHomeworksKeyMissing
	}

	records, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrHomeworksNotList, raw)
	}

	return records, nil
}

// ResponseTimestamp extracts the server's reported current timestamp from a
// validated response. The second return value is false when the field is
// absent or not a number; the caller keeps its previous cursor in that case.
func ResponseTimestamp(response any) (int64, bool) {
	object, ok := response.(map[string]any)
	if !ok {
		return 0, false
	}
	ts, ok := object["timestamp"].(float64)
	if !ok {
		return 0, false
	}
	return int64(ts), true
}
