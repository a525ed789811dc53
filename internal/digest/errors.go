package digest

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind is the coarse category of a failed digest call. Callers branch on
// the kind; the wrapped platform error carries the diagnostic detail.
type Kind int

const (
	// KindNotFound: the path does not resolve to an existing entry.
	KindNotFound Kind = iota + 1
	// KindNotAFile: the path resolves to a directory or another
	// non-regular entry (device, socket, fifo).
	KindNotAFile
	// KindPermission: the process lacks read access.
	KindPermission
	// KindIO: any other open, stat or mid-read failure.
	KindIO
)

// String returns the stable lowercase name of the kind. The same string is
// used in error messages and as the machine-readable category in structured
// output.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotAFile:
		return "not_a_file"
	case KindPermission:
		return "permission_denied"
	case KindIO:
		return "io_failure"
	default:
		return "unknown"
	}
}

// Error is the failure shape of a digest call: the category, the path the
// call was made with, and the underlying platform error. A call returns
// either a complete Result or an *Error, never both.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes the platform error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// classify wraps a platform error from open, stat or read into an *Error
// with the matching kind. Anything that is neither a missing entry nor a
// permission failure is an I/O failure carrying the original error text.
func classify(path string, err error) *Error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// notAFile builds the error for paths that resolve to something other than
// a regular file. Directories get a dedicated message.
func notAFile(path string, mode fs.FileMode) *Error {
	reason := fmt.Sprintf("not a regular file (mode %v)", mode)
	if mode.IsDir() {
		reason = "is a directory"
	}
	return &Error{Kind: KindNotAFile, Path: path, Err: errors.New(reason)}
}

// IsNotFound reports whether err is a digest error with KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsNotAFile reports whether err is a digest error with KindNotAFile.
func IsNotAFile(err error) bool { return KindOf(err) == KindNotAFile }

// IsPermission reports whether err is a digest error with KindPermission.
func IsPermission(err error) bool { return KindOf(err) == KindPermission }

// IsIO reports whether err is a digest error with KindIO.
func IsIO(err error) bool { return KindOf(err) == KindIO }

// KindOf extracts the kind carried by err, or zero when err did not come
// from this package.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
