// Package digest computes the MD5, SHA-1, SHA-256 and SHA-512 digests of a
// file in a single read pass, together with size and timestamp metadata.
//
// Every call is independent and idempotent: it opens the file, streams the
// content once through four fresh accumulators, and returns either a
// complete Result or a typed *Error, never a partial result. The package
// keeps no state between calls, performs no caching, no retries and no
// logging; concurrent calls for different files need no coordination.
package digest

import (
	"encoding/hex"
	"hash"
	"io"
	"os"
)

// ChunkSize is the fixed read size of the streaming pass. 64 KiB keeps
// memory use flat regardless of file size while amortizing syscall
// overhead. Digests do not depend on this value; chunking is invisible in
// the output.
const ChunkSize = 64 * 1024

// Compute opens the file at path and streams its content once through all
// registered accumulators, returning the digests plus metadata gathered
// from the same open handle. Symbolic links are followed, matching the
// platform's default open semantics. The handle is released before Compute
// returns, on success and failure alike.
//
// Failures come back as *Error carrying one of the kinds NotFound,
// NotAFile, PermissionDenied or IoFailure. A mid-read failure aborts the
// whole call; Compute never returns a partial Result, and never retries.
func Compute(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, classify(path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, notAFile(path, fi.Mode())
	}

	// Timestamps come from the handle about to be read, not from a second
	// stat that could race with the read pass.
	md := fileMetadata(fi)

	sums, n, err := stream(f, make([]byte, ChunkSize))
	if err != nil {
		return nil, classify(path, err)
	}

	return assemble(sums, n, md), nil
}

// stream reads r chunk by chunk into buf and feeds every chunk to one
// fresh accumulator per registered algorithm before the next chunk is
// read, so a single disk pass produces all digests and chunks are never
// reordered. It returns the finalized digests as lowercase hex keyed by
// algorithm name, plus the byte count consumed. A reader that yields no
// bytes is valid and finalizes to the well-known empty-input digests.
func stream(r io.Reader, buf []byte) (map[string]string, int64, error) {
	accs := make([]hash.Hash, len(Algorithms))
	writers := make([]io.Writer, len(Algorithms))
	for i, alg := range Algorithms {
		accs[i] = alg.New()
		writers[i] = accs[i]
	}
	fanout := io.MultiWriter(writers...)

	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := fanout.Write(buf[:n]); werr != nil {
				return nil, 0, werr
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, 0, rerr
		}
	}

	sums := make(map[string]string, len(Algorithms))
	for i, alg := range Algorithms {
		sums[alg.Name] = hex.EncodeToString(accs[i].Sum(nil))
	}
	return sums, total, nil
}

// assemble builds the Result handed across the package boundary. The size
// is the streamed byte count, exactly the content the digests were
// computed over, rather than a stat value that may have drifted.
func assemble(sums map[string]string, size int64, md Metadata) *Result {
	return &Result{
		MD5:      sums["md5"],
		SHA1:     sums["sha1"],
		SHA256:   sums["sha256"],
		SHA512:   sums["sha512"],
		FileSize: size,
		Modified: md.Modified,
		Created:  md.Created,
	}
}
