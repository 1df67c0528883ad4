package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Supported checksum algorithms.
const (
	ChecksumSHA256  = "sha256"
	ChecksumBLAKE2b = "blake2b"
)

var (
	ErrUnknownChecksumAlgorithm = errors.New("unknown checksum algorithm")
	ErrMalformedChecksum        = errors.New("malformed checksum")
)

// NewHasher returns a fresh hash.Hash for algo.
func NewHasher(algo string) (hash.Hash, error) {
	switch algo {
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumBLAKE2b:
		return blake2b.New256(nil)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChecksumAlgorithm, algo)
}

// FormatChecksum renders a digest as "<algo>:<hex>".
func FormatChecksum(algo string, sum []byte) string {
	return algo + ":" + hex.EncodeToString(sum)
}

// ParseChecksum splits "<algo>:<hex>" into its parts. A bare hex digest is
// read as sha256. The digest is returned lower-cased.
func ParseChecksum(checksum string) (algo string, digest string, err error) {
	checksum = strings.TrimSpace(checksum)
	algo, digest, found := strings.Cut(checksum, ":")
	if !found {
		algo, digest = ChecksumSHA256, checksum
	}
	algo = strings.ToLower(algo)
	digest = strings.ToLower(digest)

	if _, err = NewHasher(algo); err != nil {
		return "", "", err
	}
	if len(digest) != 64 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedChecksum, checksum)
	}
	if _, err = hex.DecodeString(digest); err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedChecksum, checksum)
	}

	return algo, digest, nil
}

// HashFile streams the file at path through algo and returns its checksum
// and size.
func HashFile(path, algo string) (string, int64, error) {
	h, err := NewHasher(algo)
	if err != nil {
		return "", 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}

	return FormatChecksum(algo, h.Sum(nil)), n, nil
}
