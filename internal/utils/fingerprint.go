package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the digest length in bytes.
const fingerprintSize = 8

// Fingerprinter produces short keyed BLAKE2b digests of cédulas so log
// entries can be correlated without storing the number itself.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter returns a Fingerprinter keyed with key. Keys longer than
// [blake2b.Size] bytes are truncated; an empty key produces an unkeyed digest.
func NewFingerprinter(key string) *Fingerprinter {
	k := []byte(key)
	if len(k) > blake2b.Size {
		k = k[:blake2b.Size]
	}
	return &Fingerprinter{key: k}
}

// Fingerprint returns the hex-encoded digest of the trimmed value.
// Without a key the digest can be reversed by enumerating all cédulas, so
// production deployments must set one.
func (f *Fingerprinter) Fingerprint(value string) string {
	var key []byte
	if f != nil {
		key = f.key
	}

	h, err := blake2b.New(fingerprintSize, key)
	if err != nil {
		// only reachable with an oversized key, which NewFingerprinter prevents
		return ""
	}

	h.Write([]byte(strings.TrimSpace(value)))

	return hex.EncodeToString(h.Sum(nil))
}
