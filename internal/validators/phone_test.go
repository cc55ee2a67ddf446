package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"turkish mobile", "+90 532 123 45 67", true},
		{"dashed", "0532-123-45-67", true},
		{"parenthesised", "(0212) 345 67 89", true},
		{"bare digits", "5321234567", true},
		{"minimum length", "1234567", true},
		{"maximum length", "123456789012345", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "123456", false},
		{"too long", "1234567890123456", false},
		{"letters", "call me maybe", false},
		{"plus in the middle", "0532+1234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhoneValid(tt.phone))
		})
	}
}
