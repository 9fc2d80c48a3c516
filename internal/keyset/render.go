package keyset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/joho/godotenv"
)

// EnvTargets are the env files the printed values belong in.
var EnvTargets = []string{
	"docker/stack-auth/.env",
	"apps/strapi/.env",
}

var securityTips = []string{
	"Never commit .env files to version control",
	"Use different keys for different environments",
	"Rotate keys regularly in production",
	"Store production keys securely (e.g., in a password manager)",
}

// WriteConsole prints the set in the human-readable layout: a banner, one
// header per section, then copy instructions and security tips.
func WriteConsole(w io.Writer, set *Set) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "🔐 Generating secure keys for your CMS setup...\n\n")

	for i, sec := range set.Sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "=== %s ===\n", sec.Title)
		for _, e := range sec.Entries {
			if e.Spaced {
				fmt.Fprintf(bw, "%s= %s\n", e.Name, e.Value)
			} else {
				fmt.Fprintf(bw, "%s=%s\n", e.Name, e.Value)
			}
		}
	}

	fmt.Fprint(bw, "\n✅ Keys generated successfully!\n")
	fmt.Fprint(bw, "\n📝 Copy these values to your respective .env files:\n")
	for _, target := range EnvTargets {
		fmt.Fprintf(bw, "   • %s\n", target)
	}

	fmt.Fprint(bw, "\n🔒 Security tips:\n")
	for _, tip := range securityTips {
		fmt.Fprintf(bw, "   • %s\n", tip)
	}

	return bw.Flush()
}

// WriteDotenv prints the set as env-file lines, sorted and quoted.
func WriteDotenv(w io.Writer, set *Set) error {
	env := make(map[string]string)
	for _, e := range set.Entries() {
		env[e.Name] = e.Value
	}

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal dotenv: %w", err)
	}
	if _, err := io.WriteString(w, content+"\n"); err != nil {
		return fmt.Errorf("write dotenv: %w", err)
	}
	return nil
}

// Format selects a renderer.
type Format string

const (
	FormatConsole Format = "console"
	FormatDotenv  Format = "dotenv"
)

// Write renders set in the given format.
func Write(w io.Writer, set *Set, format Format) error {
	switch format {
	case FormatConsole, "":
		return WriteConsole(w, set)
	case FormatDotenv:
		return WriteDotenv(w, set)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
