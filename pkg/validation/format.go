// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/agencyforge/roi-proposal/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatText, constants.OutputFormatSummary,
		constants.OutputFormatScript, constants.OutputFormatPDF:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s, or %s, got %s",
		constants.OutputFormatText, constants.OutputFormatSummary,
		constants.OutputFormatScript, constants.OutputFormatPDF, format)
}
