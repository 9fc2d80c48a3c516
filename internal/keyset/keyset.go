// Package keyset holds the fixed catalogue of secrets a CMS deployment needs
// and renders them for copying into env files.
package keyset

import (
	"fmt"
	"strings"

	"cms-keygen/internal/secret"
)

// Section titles, in output order.
const (
	SectionStackAuth = "STACK AUTH KEYS"
	SectionDatabase  = "DATABASE PASSWORD"
	SectionStrapi    = "STRAPI KEYS"
)

const (
	keyBytes        = 32
	svixAPIKeyBytes = 16
	svixPrefix      = "sv-"
	passwordLength  = 24
	appKeyCount     = 4
)

// Entry is one labelled secret.
type Entry struct {
	Name  string
	Value string
	// Spaced entries print as "NAME= value" on the console.
	Spaced bool
}

// Section is a titled group of entries printed under one header.
type Section struct {
	Title   string
	Entries []Entry
}

// Set is a complete, generated key set.
type Set struct {
	Sections []Section
}

// Lookup returns the value of the named entry.
func (s *Set) Lookup(name string) (string, bool) {
	for _, sec := range s.Sections {
		for _, e := range sec.Entries {
			if e.Name == name {
				return e.Value, true
			}
		}
	}
	return "", false
}

// Entries returns every entry across all sections, in output order.
func (s *Set) Entries() []Entry {
	var out []Entry
	for _, sec := range s.Sections {
		out = append(out, sec.Entries...)
	}
	return out
}

// Generate draws every secret in the catalogue from g. Nothing is returned
// unless all draws succeed.
func Generate(g *secret.Generator) (*Set, error) {
	serverKey, err := g.URLSafeKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("STACK_SECRET_SERVER_KEY: %w", err)
	}
	svixAPIKey, err := g.HexToken(svixPrefix, svixAPIKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("STACK_SVIX_API_KEY: %w", err)
	}
	svixJWTSecret, err := g.HexToken(svixPrefix, keyBytes)
	if err != nil {
		return nil, fmt.Errorf("SVIX_JWT_SECRET: %w", err)
	}

	dbPassword, err := g.Alphanumeric(passwordLength)
	if err != nil {
		return nil, fmt.Errorf("DATABASE_PASSWORD: %w", err)
	}

	jwtSecret, err := g.StandardBase64Key(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET: %w", err)
	}
	adminJWTSecret, err := g.StandardBase64Key(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET: %w", err)
	}
	appKeys := make([]string, 0, appKeyCount)
	for i := 0; i < appKeyCount; i++ {
		k, err := g.StandardBase64Key(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("APP_KEYS[%d]: %w", i, err)
		}
		appKeys = append(appKeys, k)
	}

	return &Set{Sections: []Section{
		{
			Title: SectionStackAuth,
			Entries: []Entry{
				{Name: "STACK_SECRET_SERVER_KEY", Value: serverKey, Spaced: true},
				{Name: "STACK_SVIX_API_KEY", Value: svixAPIKey},
				{Name: "SVIX_JWT_SECRET", Value: svixJWTSecret},
			},
		},
		{
			Title: SectionDatabase,
			Entries: []Entry{
				{Name: "DATABASE_PASSWORD", Value: dbPassword, Spaced: true},
			},
		},
		{
			Title: SectionStrapi,
			Entries: []Entry{
				{Name: "JWT_SECRET", Value: jwtSecret, Spaced: true},
				{Name: "ADMIN_JWT_SECRET", Value: adminJWTSecret, Spaced: true},
				{Name: "APP_KEYS", Value: strings.Join(appKeys, ","), Spaced: true},
			},
		},
	}}, nil
}

// SigningSecrets names the entries used as HMAC signing keys.
var SigningSecrets = []string{"SVIX_JWT_SECRET", "JWT_SECRET", "ADMIN_JWT_SECRET"}
