package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIdentityNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "ABCDE1234F", true},
		{"valid lowercase", "abcde1234f", true},
		{"too short", "ABCD1234F", false},
		{"too long", "ABCDE12345F", false},
		{"digit in letter zone", "AB1DE1234F", false},
		{"letter in digit zone", "ABCDEX234F", false},
		{"digit in trailing letter", "ABCDE12345", false},
		{"symbol", "ABCDE12#4F", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIdentityNumber(tt.input))
		})
	}
}

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid numeric", "12345678", true},
		{"valid mixed", "AC100200XYZ", true},
		{"too short", "1234567", false},
		{"contains dash", "1234-5678", false},
		{"contains space", "1234 5678", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAccountNumber(tt.input))
		})
	}
}

func TestValidatorTags(t *testing.T) {
	v := New()

	type record struct {
		ID  string `validate:"identity_number"`
		Acc string `validate:"account_number"`
	}

	assert.NoError(t, v.Struct(record{ID: "ABCDE1234F", Acc: "AC100200"}))
	assert.Error(t, v.Struct(record{ID: "bogus", Acc: "AC100200"}))
	assert.Error(t, v.Struct(record{ID: "ABCDE1234F", Acc: "short"}))
}
