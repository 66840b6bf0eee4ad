package store

import (
	"fmt"
	"os"
	"strings"
)

// ReadFile loads a store from the secrets file at path. A missing file
// yields an empty store, matching first-run behavior. Malformed lines
// are returned as LineErrors alongside the successfully decoded records.
func ReadFile(path string) (Store, []LineError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil, nil
		}
		return Store{}, nil, fmt.Errorf("read secrets file %s: %w", path, err)
	}
	s, errs := Load(strings.Split(string(data), "\n"))
	return s, errs, nil
}

// WriteFile serializes the store to path, one canonical URI per line.
// Secrets are key material, so the file is created owner-readable only.
func WriteFile(path string, s Store) error {
	var b strings.Builder
	for _, line := range s.Serialize() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write secrets file %s: %w", path, err)
	}
	return nil
}
