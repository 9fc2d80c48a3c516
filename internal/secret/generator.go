// Package secret draws cryptographically random bytes and encodes them into
// the textual formats used for API keys, passwords and signing secrets.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Alphabet is the character set used by Alphanumeric.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	// ErrRandomSourceUnavailable means the source failed or returned too few bytes.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	// ErrInvalidLength is returned for a zero or negative length.
	ErrInvalidLength           = errors.New("length must be positive")
)

// Generator encodes fresh random draws from its source. The zero value is not
// usable; use New or Default.
type Generator struct {
	source io.Reader
}

// New returns a Generator reading from source. A nil source selects
// crypto/rand.Reader.
func New(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Default is backed by crypto/rand.
var Default = New(nil)

// Bytes draws n random bytes. Every call allocates a fresh buffer.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(g.source, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return b, nil
}

// URLSafeKey returns byteLength random bytes in unpadded URL-safe base64
// ('-' and '_' in place of '+' and '/').
func (g *Generator) URLSafeKey(byteLength int) (string, error) {
	b, err := g.Bytes(byteLength)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HexToken returns prefix followed by byteLength random bytes in lowercase hex.
func (g *Generator) HexToken(prefix string, byteLength int) (string, error) {
	b, err := g.Bytes(byteLength)
	if err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(b), nil
}

// Alphanumeric returns length characters drawn uniformly from Alphabet.
func (g *Generator) Alphanumeric(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	limit := big.NewInt(int64(len(Alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(g.source, limit)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
		}
		out[i] = Alphabet[n.Int64()]
	}
	return string(out), nil
}

// StandardBase64Key returns byteLength random bytes in padded standard base64.
func (g *Generator) StandardBase64Key(byteLength int) (string, error) {
	b, err := g.Bytes(byteLength)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// URLSafeKey calls Default.URLSafeKey.
func URLSafeKey(byteLength int) (string, error) {
	return Default.URLSafeKey(byteLength)
}

// HexToken calls Default.HexToken.
func HexToken(prefix string, byteLength int) (string, error) {
	return Default.HexToken(prefix, byteLength)
}

// Alphanumeric calls Default.Alphanumeric.
func Alphanumeric(length int) (string, error) {
	return Default.Alphanumeric(length)
}

// StandardBase64Key calls Default.StandardBase64Key.
func StandardBase64Key(byteLength int) (string, error) {
	return Default.StandardBase64Key(byteLength)
}
