package output

import (
	"errors"

	"github.com/Swatto86/checksum-check/internal/batch"
	"github.com/Swatto86/checksum-check/internal/digest"
)

// successEntry is the wire form of a hashed file in json and yaml documents:
// the digest result keys plus the path the caller asked for.
type successEntry struct {
	Path     string `json:"path" yaml:"path"`
	MD5      string `json:"md5" yaml:"md5"`
	SHA1     string `json:"sha1" yaml:"sha1"`
	SHA256   string `json:"sha256" yaml:"sha256"`
	SHA512   string `json:"sha512" yaml:"sha512"`
	FileSize int64  `json:"file_size" yaml:"file_size"`
	Modified int64  `json:"modified" yaml:"modified"`
	Created  int64  `json:"created" yaml:"created"`
}

// failureEntry is the wire form of a file that could not be hashed.
type failureEntry struct {
	Path  string     `json:"path" yaml:"path"`
	Error entryError `json:"error" yaml:"error"`
}

type entryError struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// document returns the shape shared by the structured formats: a single
// entry for one file, a list of entries for several.
func document(outcomes []batch.Outcome) any {
	if len(outcomes) == 1 {
		return entryFor(outcomes[0])
	}
	entries := make([]any, 0, len(outcomes))
	for _, o := range outcomes {
		entries = append(entries, entryFor(o))
	}
	return entries
}

func entryFor(o batch.Outcome) any {
	if o.Err != nil {
		return failureEntry{Path: o.Path, Error: errorShape(o.Err)}
	}
	res := o.Result
	return successEntry{
		Path:     o.Path,
		MD5:      res.MD5,
		SHA1:     res.SHA1,
		SHA256:   res.SHA256,
		SHA512:   res.SHA512,
		FileSize: res.FileSize,
		Modified: res.Modified,
		Created:  res.Created,
	}
}

// errorShape splits an error into its taxonomy kind and the cause message.
// The path is not repeated in the message since the entry already carries it.
func errorShape(err error) entryError {
	var de *digest.Error
	if errors.As(err, &de) {
		return entryError{Kind: de.Kind.String(), Message: de.Err.Error()}
	}
	return entryError{Kind: digest.Kind(0).String(), Message: err.Error()}
}
