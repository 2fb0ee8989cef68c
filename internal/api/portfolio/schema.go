package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date-like fields arrive as strings. Empty values coerce to null for the
// optional ones; startDate is required on every row that has it, so an
// empty value means the field was not edited and is dropped instead.
var dateFields = map[string]bool{
	"startDate":      true,
	"endDate":        true,
	"graduationDate": true,
	"issueDate":      true,
}

var requiredDateFields = map[string]bool{
	"startDate": true,
}

// String-array fields are stored as JSON text columns.
var arrayFields = map[string]bool{
	"description": true,
	"screenshots": true,
	"techStack":   true,
}

// skipFields never reach the store from an update payload.
var skipFields = map[string]bool{
	"id":        true,
	"type":      true,
	"createdAt": true,
}

// parseDate accepts the two date shapes the dashboard sends.
func parseDate(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return ts, nil
}

// optionalDate coerces an empty string to nil and parses anything else.
func optionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	ts, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// optionalString maps "" to a null column value.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// normalizeChanges turns a raw JSON update payload into a column-keyed
// change set: identifiers and discriminators dropped, date strings parsed
// (empty to null, or dropped when the column is required), arrays
// re-marshaled for the JSON text columns.
func normalizeChanges(body map[string]interface{}) (map[string]interface{}, error) {
	changes := make(map[string]interface{}, len(body))
	for field, value := range body {
		if skipFields[field] {
			continue
		}
		switch {
		case dateFields[field]:
			str, _ := value.(string)
			ts, err := optionalDate(str)
			if err != nil {
				return nil, err
			}
			if ts == nil {
				if requiredDateFields[field] {
					continue
				}
				changes[columnName(field)] = nil
			} else {
				changes[columnName(field)] = *ts
			}
		case arrayFields[field]:
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", field, err)
			}
			changes[columnName(field)] = string(raw)
		default:
			changes[columnName(field)] = value
		}
	}
	return changes, nil
}

// columnName maps a JSON field name to its column. "order" is reserved in
// SQL and lives in display_order.
func columnName(field string) string {
	if field == "order" {
		return "display_order"
	}
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
