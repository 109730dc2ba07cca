package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		expectError bool
	}{
		{"Text", "text", false},
		{"Summary", "summary", false},
		{"Script", "script", false},
		{"PDF", "pdf", false},
		{"Unknown", "csv", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectError = %v", tt.format, err, tt.expectError)
			}
		})
	}
}
