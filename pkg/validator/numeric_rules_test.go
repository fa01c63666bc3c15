package validator_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/targetform/pkg/validator"
)

func TestIsNumericString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"0", true},
		{"90", true},
		{"0.95", true},
		{".", true},
		{"1.2.3", true},
		{"...", true},
		{"abc", false},
		{"-1", false},
		{"+1", false},
		{"1e5", false},
		{" 1", false},
		{"1,5", false},
		{"12a", false},
		{"٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsNumericString(tt.text))
		})
	}
}

func TestParseLeadingFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"90", 90, true},
		{"0.95", 0.95, true},
		{"0", 0, true},
		{"000", 0, true},
		{"1.2.3", 1.2, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"12abc", 12, true},
		{"", 0, false},
		{".", 0, false},
		{"..5", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := validator.ParseLeadingFloat(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			} else {
				assert.True(t, math.IsNaN(got))
			}
		})
	}

	t.Run("overflow parses as positive infinity", func(t *testing.T) {
		got, ok := validator.ParseLeadingFloat(strings.Repeat("9", 400))
		assert.True(t, ok)
		assert.True(t, math.IsInf(got, 1))
	})
}

func TestPositiveNumericString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  bool
	}{
		{"90", true},
		{"0.95", true},
		{"1.2.3", true},
		{"0", false},
		{"0.0", false},
		{"", false},
		{".", false},
		{"abc", false},
		{"-5", false},
		{"1e3", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.PositiveNumericString("targetmetric", tt.value)
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.PositiveNumericString("targetmetric", "abc")
		assert.Equal(t, "targetmetric", rule.Error.Field)
		assert.Equal(t, "must be a positive number", rule.Error.Message)
		assert.Equal(t, "validation.positive_number", rule.Error.TranslationKey)
	})
}

func TestNumericString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"12.5", true},
		{"5.", true},
		{"", false},
		{".", false},
		{"1,5", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.NumericString("metric", tt.value).Check())
		})
	}
}

func TestMinNum(t *testing.T) {
	t.Parallel()
	t.Run("passes when value equals minimum", func(t *testing.T) {
		rule := validator.MinNum("metric", 0.0, 0.0)
		assert.True(t, rule.Check())
	})

	t.Run("fails when value is below minimum", func(t *testing.T) {
		rule := validator.MinNum("metric", -1.5, 0.0)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 0", rule.Error.Message)
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	})
}

func TestFiniteNumber(t *testing.T) {
	t.Parallel()

	overflow, ok := validator.ParseLeadingFloat("1" + strings.Repeat("0", 400))
	assert.True(t, ok)

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"zero", 0, true},
		{"max float", math.MaxFloat64, true},
		{"negative", -1.5, true},
		{"overflowed parse", overflow, false},
		{"negative infinity", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.FiniteNumber("metric", tt.value))
			if tt.want {
				assert.NoError(t, err)
				return
			}
			errs := validator.ExtractValidationErrors(err)
			if assert.Len(t, errs, 1) {
				assert.Equal(t, "metric", errs[0].Field)
				assert.Equal(t, "validation.finite", errs[0].TranslationKey)
			}
		})
	}
}
