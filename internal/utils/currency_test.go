package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"wallet balance", 120, "₹120.00"},
		{"due amount", 30, "₹30.00"},
		{"after top up", 320, "₹320.00"},
		{"ledger total", 57.50, "₹57.50"},
		{"zero", 0, "₹0.00"},
		{"thousands grouping", 1234, "₹1,234.00"},
		{"lakh grouping", 123456, "₹1,23,456.00"},
		{"crore grouping", 12345678.9, "₹1,23,45,678.90"},
		{"paise rounding", 99.999, "₹100.00"},
		{"negative", -45.5, "-₹45.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}
