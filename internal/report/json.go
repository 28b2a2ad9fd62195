package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AndreyAkinshin/suiterun/internal/model"
)

// WriteJSON writes the summary as an indented JSON document. Captured output
// is written in full.
func WriteJSON(w io.Writer, s model.RunSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
