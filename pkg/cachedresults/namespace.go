package cachedresults

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// InputNamespace names the cache entries built from the catalogue file at
// path. It changes whenever the file contents change.
func InputNamespace(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening catalogue input: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("hashing catalogue input: %w", err)
	}

	return fmt.Sprintf("catalogue:%s", hex.EncodeToString(hash.Sum(nil))[:16]), nil
}
