package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/secinspect/internal/models"
	"gopkg.in/yaml.v3"
)

// Encode writes report to w in the given format. An empty format means
// JSON.
func Encode(w io.Writer, report models.ScanReport, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", jsonIndent)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			_ = enc.Close()
			return fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format '%s'", format)
	}
}
