package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "MH12AB1234", NormalizePlate("mh 12-ab 1234"))
	assert.Equal(t, "KA05CD9876", NormalizePlate("KA05CD9876"))
	assert.Equal(t, "DL01XY0001", NormalizePlate(" dl-01 xy 0001 "))
}

func TestIsValidPlate(t *testing.T) {
	assert.True(t, IsValidPlate("MH12AB1234"))
	assert.False(t, IsValidPlate("mh12ab1234"), "lowercase must be normalized first")
	assert.False(t, IsValidPlate("MH1AB1234"))
	assert.False(t, IsValidPlate("MH12AB123"))
	assert.False(t, IsValidPlate(""))
}

func TestIsValidPIN(t *testing.T) {
	assert.True(t, IsValidPIN("411001"))
	assert.False(t, IsValidPIN("4110"))
	assert.False(t, IsValidPIN("41100a"))
	assert.False(t, IsValidPIN("4110011"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.False(t, IsValidPhone("98765"))
	assert.False(t, IsValidPhone("+919876543210"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ravi@example.com"))
	assert.True(t, IsValidEmail("asha@tollpass.in"))
	assert.False(t, IsValidEmail("ravi@example"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a b@example.com"))
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Secret@123", true},
		{"valid admin", "Admin@123", true},
		{"too short", "Ab@1", false},
		{"no uppercase", "secret@123", false},
		{"no lowercase", "SECRET@123", false},
		{"no digit", "Secret@abc", false},
		{"no special", "Secret1234", false},
		{"disallowed special", "Secret#123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}
