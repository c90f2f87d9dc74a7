package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/legiblehq/legible/internal/colour"
)

// report is the structured output of the check command.
type report struct {
	Mode  string          `json:"mode" yaml:"mode"`
	Pairs []colour.Result `json:"pairs" yaml:"pairs"`
}

// formatResults renders the visible results in the requested format.
// Previews are only meaningful for the table format and are ignored
// elsewhere.
func formatResults(results []colour.Result, mode colour.Mode, format string, preview bool) (string, error) {
	switch format {
	case "table", "":
		return formatTable(results, preview), nil
	case "json":
		out, err := json.MarshalIndent(report{Mode: mode.String(), Pairs: results}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(out) + "\n", nil
	case "yaml":
		out, err := yaml.Marshal(report{Mode: mode.String(), Pairs: results})
		if err != nil {
			return "", fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", format)
	}
}

// formatTable renders the results as a plain-text table, optionally
// prefixed per row with an ANSI preview of the text on its background.
func formatTable(results []colour.Result, preview bool) string {
	t := newTable("TEXT", "BACKGROUND", "WCAG", "WCAG TIER", "APCA", "APCA TIER")
	for _, r := range results {
		t.addRow(
			string(r.Text),
			string(r.Background),
			r.FormatWCAG(),
			r.WCAGTier.String(),
			r.FormatAPCA(),
			r.APCATier.String(),
		)
	}

	if !preview {
		return t.render()
	}

	// ANSI escape sequences would skew the table's width calculation, so
	// previews are spliced in as a fixed-width prefix column after
	// rendering.
	lines := strings.Split(strings.TrimRight(t.render(), "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		switch {
		case i == 0:
			b.WriteString(strings.Repeat(" ", previewWidth+2))
		case i == 1:
			b.WriteString(strings.Repeat("-", previewWidth) + "  ")
		default:
			r := results[i-2]
			b.WriteString(colour.SampleText(r.Text, r.Background, "Aa", previewWidth) + "  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// previewWidth is the visible width of the preview column.
const previewWidth = 6
