package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// VideoKey derives the stable session key from clip content. Display names
// collide (phones re-export under the same name), so the store is keyed by
// a content hash instead.
func VideoKey(r io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func VideoKeyFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return VideoKey(f)
}
