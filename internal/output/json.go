package output

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/Swatto86/checksum-check/internal/batch"
)

func renderJSON(w io.Writer, outcomes []batch.Outcome) error {
	data, err := json.MarshalIndent(document(outcomes), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
