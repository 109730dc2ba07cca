package export

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// CopySummary places the proposal text summary on the system clipboard. A
// write failure is logged and returned so the UI can revert its "copied"
// indicator, but it is never escalated to an alert.
func CopySummary(summary string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := clipboard.WriteAll(summary); err != nil {
		logger.Error("failed to copy summary to clipboard",
			zap.String("op", "export.CopySummary"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
