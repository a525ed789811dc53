package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/Swatto86/checksum-check/internal/batch"
)

var headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()

const cardSep = "═══════════════════════════════════════════════════"

// renderText writes one card per successfully hashed file. Failed files do
// not get a card; the caller reports them on stderr.
func renderText(w io.Writer, outcomes []batch.Outcome) error {
	first := true
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		writeCard(w, o)
	}
	return nil
}

// writeCard prints the digest card for one file.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  report.pdf
//	═══════════════════════════════════════════════════
//	  Size:     1048576 bytes
//	  Modified: 2026-08-23 14:03:12
//	  Created:  2026-08-23 14:03:12
//	  MD5:      d41d8cd98f00b204e9800998ecf8427e
//	  SHA1:     da39a3ee5e6b4b0d3255bfef95601890afd80709
//	  SHA256:   e3b0c44298fc1c149afbf4c8996fb92427ae41e4...
//	  SHA512:   cf83e1357eefb8bdf1542850d66d8007d620e405...
//	═══════════════════════════════════════════════════
func writeCard(w io.Writer, o batch.Outcome) {
	res := o.Result
	sep := headerColor(cardSep)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  "+o.Path))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Size:     %d bytes\n", res.FileSize)
	fmt.Fprintf(w, "  Modified: %s\n", stamp(res.Modified))
	fmt.Fprintf(w, "  Created:  %s\n", stamp(res.Created))
	fmt.Fprintf(w, "  MD5:      %s\n", res.MD5)
	fmt.Fprintf(w, "  SHA1:     %s\n", res.SHA1)
	fmt.Fprintf(w, "  SHA256:   %s\n", res.SHA256)
	fmt.Fprintf(w, "  SHA512:   %s\n", res.SHA512)
	fmt.Fprintln(w, sep)
}

// stamp renders a unix timestamp in the local timezone.
func stamp(unix int64) string {
	return time.Unix(unix, 0).Format("2006-01-02 15:04:05")
}
