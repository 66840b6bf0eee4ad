// Package otp implements HOTP (RFC 4226) and TOTP (RFC 6238) code
// generation. All functions are pure: they compute over their inputs and
// keep no state, so they are safe to call from anywhere.
package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/atinyakov/authtui/internal/models"
)

var (
	// ErrDigits is returned when the requested code length cannot be
	// produced by 31-bit truncation.
	ErrDigits = errors.New("digits out of range")
)

// hashFor maps the closed Algorithm enumeration to its HMAC primitive.
func hashFor(alg models.Algorithm) (func() hash.Hash, error) {
	switch alg {
	case models.SHA1:
		return sha1.New, nil
	case models.SHA256:
		return sha256.New, nil
	case models.SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownAlgorithm, alg)
	}
}

// pow10 for exponents up to models.MaxDigits.
var pow10 = [...]uint64{1, 10, 100, 1000, 10000, 100000, 1000000,
	10000000, 100000000, 1000000000, 10000000000}

// HOTP computes the RFC 4226 code for key at the given counter value.
//
// The HMAC digest of the 8-byte big-endian counter is dynamically
// truncated: the low 4 bits of the final digest byte select an offset,
// the 4 bytes at that offset are read as a 31-bit big-endian integer,
// and the result is reduced modulo 10^digits and left-padded with
// zeros. digits must be within [1, models.MaxDigits]; the codec rejects
// anything outside [models.MinDigits, models.MaxDigits] long before a
// record reaches this function.
func HOTP(key []byte, counter uint64, digits int, alg models.Algorithm) (string, error) {
	if digits < 1 || digits > models.MaxDigits {
		return "", fmt.Errorf("%w: %d", ErrDigits, digits)
	}
	h, err := hashFor(alg)
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	mac := hmac.New(h, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", digits, uint64(code)%pow10[digits]), nil
}

// TOTP computes the RFC 6238 code for key at Unix time t with the
// default epoch of zero.
func TOTP(key []byte, t uint64, period uint, digits int, alg models.Algorithm) (string, error) {
	return TOTPWithEpoch(key, t, 0, period, digits, alg)
}

// TOTPWithEpoch computes a TOTP code counting periods from a custom
// epoch instead of the Unix zero.
func TOTPWithEpoch(key []byte, t, epoch uint64, period uint, digits int, alg models.Algorithm) (string, error) {
	if period == 0 {
		return "", errors.New("zero period")
	}
	return HOTP(key, (t-epoch)/uint64(period), digits, alg)
}

// Remaining returns the seconds left until the next period boundary
// after Unix time t.
func Remaining(t uint64, period uint) uint {
	return period - uint(t%uint64(period))
}

// Generate computes the current code for a record: TOTP at Unix time t,
// or HOTP at the record's stored counter.
func Generate(r models.Record, t uint64) (string, error) {
	if r.Kind == models.HOTP {
		return HOTP(r.Secret, r.Counter, r.Digits, r.Algorithm)
	}
	return TOTP(r.Secret, t, r.Period, r.Digits, r.Algorithm)
}
