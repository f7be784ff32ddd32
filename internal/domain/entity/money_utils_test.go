package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1200.00", 120000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"850", 85000},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1200.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,200.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$1200", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Leading whitespace is trimmed", func(t *testing.T) {
		cents, err := ValidateAndConvertAmount("  1200.00  ")
		assert.NoError(t, err)
		assert.Equal(t, int64(120000), cents)
	})
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{120000, "1200.00"},
		{1015, "10.15"},
		{1000, "10.00"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{-1015, "-10.15"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.input))
		})
	}
}

func TestEnsureTwoDecimalPlaces(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"10", "10.00"},
		{"10.1", "10.10"},
		{"10.15", "10.15"},
		{"10.156", "10.15"},
		{"10.", "10.00"},
		{"", "0.00"},
		{"   ", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnsureTwoDecimalPlaces(tc.input))
		})
	}
}
