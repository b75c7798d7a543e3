package catalog

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"travel-backend/internal/apperr"
)

const (
	maxRating = 5
	// price columns are decimal(10,2)
	priceLimit = 1e8
)

var errNotNumber = errors.New("not a number")

// parseNumber accepts a JSON number or a string holding one.
func parseNumber(raw json.RawMessage) (float64, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errNotNumber
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	default:
		return 0, errNotNumber
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	return f, nil
}

func parsePrice(raw json.RawMessage) (float64, error) {
	price, err := parseNumber(raw)
	if err != nil {
		return 0, apperr.Validation("Price must be a number.")
	}
	if price < 0 {
		return 0, apperr.Validation("Price must not be negative.")
	}
	if price >= priceLimit {
		return 0, apperr.Validation("Price must be less than 100000000.")
	}
	return price, nil
}

// parseRating returns nil for an absent or null rating.
func parseRating(raw json.RawMessage) (*float64, error) {
	if isNull(raw) {
		return nil, nil
	}
	rating, err := parseNumber(raw)
	if err != nil {
		return nil, apperr.Validation("Rating must be a number.")
	}
	if rating < 0 || rating > maxRating {
		return nil, apperr.Validation("Rating must be between 0 and 5.")
	}
	return &rating, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// optionalText returns nil for an absent or blank value.
func optionalText(s *string) *string {
	t := trimmed(s)
	if t == "" {
		return nil
	}
	return &t
}

// updates collects the columns of a partial update. A field is applied when
// its key is present in the request, whatever its value.
type updates map[string]any

func (u updates) requiredText(column, label string, v *string) error {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return apperr.Validation(label + " cannot be empty.")
	}
	u[column] = t
	return nil
}

func (u updates) text(column string, v *string) {
	if v != nil {
		u[column] = strings.TrimSpace(*v)
	}
}

func (u updates) nullableText(column string, v *string) {
	if v != nil {
		u[column] = optionalText(v)
	}
}

func (u updates) price(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}
	price, err := parsePrice(raw)
	if err != nil {
		return err
	}
	u["price"] = price
	return nil
}

func (u updates) rating(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}
	rating, err := parseRating(raw)
	if err != nil {
		return err
	}
	u["rating"] = rating
	return nil
}

func (u updates) attributes(column string, raw json.RawMessage) {
	if raw != nil {
		u[column] = attributeDocument(raw)
	}
}
