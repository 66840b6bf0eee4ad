// Package store holds the ordered collection of OTP secret records and
// its line-oriented file representation.
package store

import (
	"fmt"
	"strings"

	"github.com/atinyakov/authtui/internal/models"
	"github.com/atinyakov/authtui/internal/otpauth"
)

// Store is an insertion-ordered sequence of records. It is a passive
// collection: it holds no clock or timer state.
type Store struct {
	Records []models.Record
}

// LineError reports a decode failure with the 1-based line it came from.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Load decodes every line independently. Blank lines and lines starting
// with '#' are skipped. A malformed line never aborts the batch: it is
// collected as a LineError and decoding continues.
func Load(lines []string) (Store, []LineError) {
	var s Store
	var errs []LineError
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := otpauth.Decode(line)
		if err == nil {
			err = r.Validate()
		}
		if err != nil {
			errs = append(errs, LineError{Line: i + 1, Err: err})
			continue
		}
		s.Records = append(s.Records, r)
	}
	return s, errs
}

// Merge appends records from incoming whose identity key is not already
// present, preserving order. Merging the same input twice is a no-op.
func (s Store) Merge(incoming Store) Store {
	seen := make(map[string]bool, len(s.Records))
	for _, r := range s.Records {
		seen[r.Key()] = true
	}
	out := Store{Records: append([]models.Record(nil), s.Records...)}
	for _, r := range incoming.Records {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		out.Records = append(out.Records, r)
	}
	return out
}

// Serialize returns one canonical URI per record in store order.
func (s Store) Serialize() []string {
	lines := make([]string, len(s.Records))
	for i, r := range s.Records {
		lines[i] = otpauth.Encode(r)
	}
	return lines
}

// Len returns the number of records.
func (s Store) Len() int {
	return len(s.Records)
}
