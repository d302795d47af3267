package payload

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "resume-builder-backend/lib/utils/app-errors"
)

// Validate checks that every required key of body holds a non-empty value and
// returns the recognized keys (required and optional) as trimmed strings.
// Missing keys are reported in the order they were declared.
func Validate(body map[string]interface{}, required []string, optional ...string) (map[string]string, error) {
	missing := make([]string, 0, len(required))
	result := make(map[string]string, len(required)+len(optional))
	for _, field := range required {
		value, ok := normalize(body, field)
		if !ok {
			missing = append(missing, field)
			continue
		}
		result[field] = value
	}
	if len(missing) != 0 {
		return nil, apperrors.NewValidation(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}
	for _, field := range optional {
		if value, ok := normalize(body, field); ok {
			result[field] = value
		}
	}
	return result, nil
}

func normalize(body map[string]interface{}, field string) (string, bool) {
	raw, ok := body[field]
	if !ok || raw == nil {
		return "", false
	}
	var value string
	switch v := raw.(type) {
	case string:
		value = v
	case float64:
		// JSON numbers arrive as float64
		value = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		value = fmt.Sprint(v)
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
