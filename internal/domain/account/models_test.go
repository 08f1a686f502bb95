package account

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateParams_ValidateAccountNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ACC1000001", true},
		{"123456", true},
		{"12345", false},
		{"ACC-100001", false},
		{"", false},
		{"A234567890123456789012345678901234", true},
		{"A2345678901234567890123456789012345", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := CreateParams{AccountNumber: tt.input, UserID: 1, InitialBalance: decimal.Zero}
			got := p.Validate() == nil
			if got != tt.want {
				t.Errorf("Validate() with number %q valid = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
