package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/Swatto86/checksum-check/internal/batch"
)

func renderYAML(w io.Writer, outcomes []batch.Outcome) error {
	data, err := yaml.Marshal(document(outcomes))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}
