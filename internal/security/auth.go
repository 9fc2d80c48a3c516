package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret        = errors.New("signing secret is empty")
	ErrSigningKeyRejected = errors.New("signing secret failed HS256 round trip")
)

// MinSigningKeyBytes is the HS256 minimum key size (RFC 7518 section 3.2).
const MinSigningKeyBytes = 32

// probeIssuer identifies tokens minted by ProbeSigningKey.
const probeIssuer = "cms-keygen"

// ProbeSigningKey checks that secret works as an HS256 JWT signing key.
// It signs a short-lived token with the secret as raw bytes, exactly as a
// service reading it from the environment would, then parses it back and
// checks the signature and claims.
//
// Returns ErrEmptySecret for an empty secret and ErrSigningKeyRejected
// (wrapping the cause) if the key is shorter than MinSigningKeyBytes or
// signing or verification fails.
func ProbeSigningKey(secret string) error {
	if secret == "" {
		return ErrEmptySecret
	}
	key := []byte(secret)
	if len(key) < MinSigningKeyBytes {
		return fmt.Errorf("%w: key is %d bytes, need at least %d", ErrSigningKeyRejected, len(key), MinSigningKeyBytes)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    probeIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return fmt.Errorf("%w: sign: %w", ErrSigningKeyRejected, err)
	}

	parsed, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(probeIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: verify: %w", ErrSigningKeyRejected, err)
	}
	if !parsed.Valid {
		return ErrSigningKeyRejected
	}

	return nil
}
