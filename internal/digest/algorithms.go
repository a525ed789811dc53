package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm describes one accumulator the engine feeds during a read pass.
// New returns a fresh accumulator: created per call, fed chunk by chunk,
// finalized exactly once, never shared between calls.
type Algorithm struct {
	Name   string           // lowercase name, doubles as the output key
	HexLen int              // fixed length of the hex-encoded digest
	New    func() hash.Hash // fresh accumulator constructor
}

// Algorithms lists every digest computed per call, in output order. There
// is no subset mode: a Result either carries all four digests or does not
// exist at all. MD5 and SHA-1 are reported for comparison against
// externally published checksums, not for collision resistance.
var Algorithms = [4]Algorithm{
	{Name: "md5", HexLen: md5.Size * 2, New: md5.New},
	{Name: "sha1", HexLen: sha1.Size * 2, New: sha1.New},
	{Name: "sha256", HexLen: sha256.Size * 2, New: sha256.New},
	{Name: "sha512", HexLen: sha512.Size * 2, New: sha512.New},
}
