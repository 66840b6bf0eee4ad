// Package otpauth encodes and decodes the otpauth:// URI format used to
// exchange OTP secrets:
//
//	otpauth://totp/Issuer:label?secret=BASE32&issuer=Issuer&algorithm=SHA1&digits=6&period=30
//
// Decode applies the de facto standard defaults (SHA1, 6 digits, 30
// second period) and normalizes base32 secrets before decoding, so
// unpadded or lowercase secrets are accepted. Encode produces the
// canonical form that Decode round-trips field for field.
package otpauth

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/atinyakov/authtui/internal/models"
)

// Scheme is the URI scheme for OTP secret exchange.
const Scheme = "otpauth"

// Decode error taxonomy. Each failure mode has its own sentinel so
// callers can classify malformed lines without string matching.
var (
	ErrInvalidScheme    = errors.New("not an otpauth uri")
	ErrMissingSecret    = errors.New("missing secret parameter")
	ErrMissingLabel     = errors.New("missing label")
	ErrInvalidBase32    = errors.New("invalid base32 secret")
	ErrUnknownAlgorithm = models.ErrUnknownAlgorithm
	ErrInvalidDigits    = errors.New("invalid digits")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidCounter   = errors.New("invalid counter")
)

// Decode parses one otpauth URI line into a Record.
func Decode(line string) (models.Record, error) {
	var r models.Record

	u, err := url.Parse(strings.TrimSpace(line))
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	if !strings.EqualFold(u.Scheme, Scheme) {
		return r, fmt.Errorf("%w: scheme %q", ErrInvalidScheme, u.Scheme)
	}
	kind, err := models.ParseKind(u.Host)
	if err != nil {
		return r, fmt.Errorf("%w: authority %q", ErrInvalidScheme, u.Host)
	}
	r.Kind = kind

	// u.Path arrives percent-decoded. The label may carry an issuer
	// prefix ("Issuer:account"); an explicit issuer parameter wins.
	label := strings.Trim(u.Path, "/")
	if i := strings.Index(label, ":"); i >= 0 {
		r.Issuer = strings.TrimSpace(label[:i])
		label = label[i+1:]
	}
	r.Label = strings.TrimSpace(label)
	if r.Label == "" {
		return r, ErrMissingLabel
	}

	q := u.Query()

	secret := q.Get("secret")
	if secret == "" {
		return r, ErrMissingSecret
	}
	r.Secret, err = decodeBase32(secret)
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidBase32, err)
	}

	if iss := q.Get("issuer"); iss != "" {
		r.Issuer = iss
	}

	r.Algorithm = models.SHA1
	if alg := q.Get("algorithm"); alg != "" {
		if r.Algorithm, err = models.ParseAlgorithm(alg); err != nil {
			return r, err
		}
	}

	r.Digits = models.DefaultDigits
	if d := q.Get("digits"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < models.MinDigits || n > models.MaxDigits {
			return r, fmt.Errorf("%w: %q", ErrInvalidDigits, d)
		}
		r.Digits = n
	}

	r.Period = models.DefaultPeriod
	if p := q.Get("period"); p != "" {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n == 0 {
			return r, fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
		}
		r.Period = uint(n)
	}

	if c := q.Get("counter"); c != "" {
		if r.Counter, err = strconv.ParseUint(c, 10, 64); err != nil {
			return r, fmt.Errorf("%w: %q", ErrInvalidCounter, c)
		}
	}

	return r, nil
}

// Encode serializes a record to its canonical otpauth URI.
func Encode(r models.Record) string {
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteString("://")
	b.WriteString(string(r.Kind))
	b.WriteString("/")
	if r.Issuer != "" {
		b.WriteString(url.PathEscape(r.Issuer))
		b.WriteString(":")
	}
	b.WriteString(url.PathEscape(r.Label))

	b.WriteString("?secret=")
	b.WriteString(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(r.Secret))
	if r.Issuer != "" {
		b.WriteString("&issuer=")
		b.WriteString(url.QueryEscape(r.Issuer))
	}
	b.WriteString("&algorithm=")
	b.WriteString(string(r.Algorithm))
	b.WriteString("&digits=")
	b.WriteString(strconv.Itoa(r.Digits))
	b.WriteString("&period=")
	b.WriteString(strconv.FormatUint(uint64(r.Period), 10))
	if r.Kind == models.HOTP {
		b.WriteString("&counter=")
		b.WriteString(strconv.FormatUint(r.Counter, 10))
	}
	return b.String()
}

// decodeBase32 normalizes a secret before decoding: uppercase, inner
// whitespace removed, and padding restored to a multiple of 8.
func decodeBase32(s string) ([]byte, error) {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	s = strings.TrimRight(s, "=")
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	raw, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty key")
	}
	return raw, nil
}
