// Package exitcode defines named exit codes for the checksum-check CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

import (
	"context"
	"errors"

	"github.com/Swatto86/checksum-check/internal/digest"
)

// Exit code constants. Codes 2 through 5 mirror the digest error taxonomy.
const (
	Success          = 0   // All files hashed
	Error            = 1   // Invalid args, bad template, misconfiguration
	NotFound         = 2   // A requested path does not exist
	NotAFile         = 3   // A requested path is not a regular file
	PermissionDenied = 4   // A requested path is not readable
	IoFailure        = 5   // Opening, statting or reading a file failed
	Interrupted      = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case NotFound:
		return "NotFound"
	case NotAFile:
		return "NotAFile"
	case PermissionDenied:
		return "PermissionDenied"
	case IoFailure:
		return "IoFailure"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}

// FromError maps an error from a run onto an exit code. Digest errors map
// onto their taxonomy code, cancellation maps onto Interrupted, anything
// else onto the generic Error code. A nil error is Success.
func FromError(err error) int {
	if err == nil {
		return Success
	}
	if errors.Is(err, context.Canceled) {
		return Interrupted
	}
	switch digest.KindOf(err) {
	case digest.KindNotFound:
		return NotFound
	case digest.KindNotAFile:
		return NotAFile
	case digest.KindPermission:
		return PermissionDenied
	case digest.KindIO:
		return IoFailure
	default:
		return Error
	}
}
