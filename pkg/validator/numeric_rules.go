package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsNumericString reports whether every character of text is a digit or a dot.
// It does not check the format: "1.2.3", "." and "" are all numeric.
func IsNumericString(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}

// ParseLeadingFloat parses the longest leading "digits[.digits]" prefix of text.
// Anything after the prefix is ignored, so "1.2.3" yields 1.2.
// The bool is false when the prefix holds no digit ("", ".", "abc").
// Values too large for float64 parse as +Inf.
func ParseLeadingFloat(text string) (float64, bool) {
	end, digits := 0, 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
		digits++
	}
	if end < len(text) && text[end] == '.' {
		end++
		for end < len(text) && text[end] >= '0' && text[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN(), false
	}

	v, err := strconv.ParseFloat(text[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}

// PositiveNumericString validates that a string is numeric and parses to a value greater than zero.
// Strings that fail IsNumericString are never parsed.
func PositiveNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !IsNumericString(value) {
				return false
			}
			n, ok := ParseLeadingFloat(value)
			return ok && n > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a positive number",
			TranslationKey: "validation.positive_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NumericString validates that a string passes IsNumericString and holds a
// parseable number. Unlike PositiveNumericString it accepts zero.
func NumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !IsNumericString(value) {
				return false
			}
			_, ok := ParseLeadingFloat(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// FiniteNumber validates that value is neither infinite nor NaN.
// ParseLeadingFloat returns +Inf for digit strings beyond float64 range.
func FiniteNumber(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsInf(value, 0) && !math.IsNaN(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a finite number",
			TranslationKey: "validation.finite",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
