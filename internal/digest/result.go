package digest

// Result is the success shape of a digest call: all four digests as
// lowercase hex plus metadata, every field populated. It is built once,
// handed to the caller, and never touched by this package again; callers
// may treat it as immutable.
//
// The serialization tags are the boundary contract: md5/sha1/sha256/sha512
// are 32/40/64/128 hex characters, file_size is the byte count that was
// streamed through the accumulators, modified and created are Unix seconds.
type Result struct {
	MD5      string `json:"md5" yaml:"md5"`
	SHA1     string `json:"sha1" yaml:"sha1"`
	SHA256   string `json:"sha256" yaml:"sha256"`
	SHA512   string `json:"sha512" yaml:"sha512"`
	FileSize int64  `json:"file_size" yaml:"file_size"`
	Modified int64  `json:"modified" yaml:"modified"`
	Created  int64  `json:"created" yaml:"created"`
}
