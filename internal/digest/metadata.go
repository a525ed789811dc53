package digest

import (
	"os"

	"github.com/djherbis/times"
)

// Metadata holds the timestamp half of a Result, in Unix seconds (UTC).
// Byte length is not part of it: the engine reports the number of bytes it
// actually streamed, which is authoritative even if the file grows or
// shrinks between stat and read.
type Metadata struct {
	Modified int64
	Created  int64
}

// fileMetadata derives timestamps from a FileInfo obtained from the
// already-open handle, so content and metadata come from a single open
// with no re-stat racing the read pass.
//
// Creation time uses the filesystem birth time where the platform records
// one (Windows, macOS, the BSDs). Platforms without it, notably Linux,
// fall back to the modification time, so Created == Modified there and a
// successful call never carries a zero stamp.
func fileMetadata(fi os.FileInfo) Metadata {
	modified := fi.ModTime().Unix()
	created := modified
	if ts := times.Get(fi); ts.HasBirthTime() {
		created = ts.BirthTime().Unix()
	}
	return Metadata{Modified: modified, Created: created}
}
