// Package models defines the core data structures for one-time-password
// secrets.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the OTP variant a record uses.
type Kind string

const (
	// TOTP derives the counter from Unix time divided by a period (RFC 6238).
	TOTP Kind = "totp"
	// HOTP uses an explicit counter incremented per generation (RFC 4226).
	HOTP Kind = "hotp"
)

// Algorithm is the HMAC hash variant used to derive codes.
type Algorithm string

const (
	// SHA1 is the default algorithm for otpauth URIs.
	SHA1 Algorithm = "SHA1"
	// SHA256 selects HMAC-SHA256.
	SHA256 Algorithm = "SHA256"
	// SHA512 selects HMAC-SHA512.
	SHA512 Algorithm = "SHA512"
)

// Digit counts supported by the truncation arithmetic. Ten is the hard
// ceiling: the truncated value is below 2^31, so 10^10 is the widest
// modulus that cannot wrap.
const (
	MinDigits = 6
	MaxDigits = 10
)

// Defaults applied when an otpauth URI omits the parameter.
const (
	DefaultDigits = 6
	DefaultPeriod = 30
)

var (
	// ErrUnknownAlgorithm is returned for hash names outside SHA1/SHA256/SHA512.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrUnknownKind is returned for OTP variants other than totp/hotp.
	ErrUnknownKind = errors.New("unknown otp kind")
)

// ParseAlgorithm maps a case-insensitive hash name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(s) {
	case string(SHA1):
		return SHA1, nil
	case string(SHA256):
		return SHA256, nil
	case string(SHA512):
		return SHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// ParseKind maps a case-insensitive otpauth authority to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case string(TOTP):
		return TOTP, nil
	case string(HOTP):
		return HOTP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Record holds one OTP secret with its generation parameters.
type Record struct {
	// Label is the display name for the account, non-empty after trimming.
	Label string
	// Issuer is the optional issuing service name.
	Issuer string
	// Secret is the raw key material decoded from base32.
	Secret []byte
	// Algorithm selects the HMAC hash variant.
	Algorithm Algorithm
	// Digits is the code length, within [MinDigits, MaxDigits].
	Digits int
	// Period is the TOTP time-step length in seconds.
	Period uint
	// Counter is the HOTP step index.
	Counter uint64
	// Kind selects between TOTP and HOTP generation.
	Kind Kind
}

// Validate reports the first violated record invariant, or nil.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return errors.New("empty label")
	}
	if len(r.Secret) == 0 {
		return errors.New("empty secret")
	}
	if r.Digits < MinDigits || r.Digits > MaxDigits {
		return fmt.Errorf("digits %d outside [%d,%d]", r.Digits, MinDigits, MaxDigits)
	}
	if r.Kind == TOTP && r.Period == 0 {
		return errors.New("zero period")
	}
	if _, err := ParseAlgorithm(string(r.Algorithm)); err != nil {
		return err
	}
	if _, err := ParseKind(string(r.Kind)); err != nil {
		return err
	}
	return nil
}

// Key returns the identity used for deduplication. Two records with the
// same issuer, label and raw secret bytes are the same record.
func (r Record) Key() string {
	return r.Issuer + "\x00" + r.Label + "\x00" + string(r.Secret)
}
