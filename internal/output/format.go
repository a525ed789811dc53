// Package output renders batch outcomes for the checksum-check CLI.
//
// Four formats are supported: a colored human-readable card per file (text),
// machine-readable json and yaml documents, and a caller-supplied line
// template. The structured formats carry failed files as explicit error
// entries so consumers can tell success from failure by shape alone.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Swatto86/checksum-check/internal/batch"
)

// Format identifies one of the supported output formats.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTemplate Format = "template"
)

// ParseFormat maps a user-supplied format name onto a Format. The template
// format is not reachable by name: it is selected by passing a template.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: text, json, yaml)", name)
	}
}

// Renderer writes batch outcomes in a fixed format.
type Renderer struct {
	Format Format
	// Template holds the line template used when Format is FormatTemplate.
	Template string
}

// Render writes all outcomes to w. The text and template formats render
// successful files only; failures are reported by the caller's logging.
// The json and yaml formats always describe every outcome.
func (r *Renderer) Render(w io.Writer, outcomes []batch.Outcome) error {
	switch r.Format {
	case FormatText:
		return renderText(w, outcomes)
	case FormatJSON:
		return renderJSON(w, outcomes)
	case FormatYAML:
		return renderYAML(w, outcomes)
	case FormatTemplate:
		return renderTemplate(w, r.Template, outcomes)
	default:
		return fmt.Errorf("unknown output format %q", r.Format)
	}
}
