package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"cms-keygen/internal/config"
	"cms-keygen/internal/keyset"
	"cms-keygen/internal/secret"
	"cms-keygen/internal/security"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	os.Exit(run(os.Args[1:], cfg, secret.Default, os.Stdout, os.Stderr))
}

// run generates one key set and writes it to stdout. Logs go to stderr so
// stdout carries nothing but the rendered secrets.
func run(args []string, cfg *config.Config, gen *secret.Generator, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "CMS Keygen %s\n\n", version)
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  keygen [flags]\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment Variables (Optional):\n")
		fmt.Fprintf(stderr, "  KEYGEN_LOG_LEVEL      debug, info, warn or error (default warn)\n")
		fmt.Fprintf(stderr, "  KEYGEN_LOG_FORMAT     json or text (default json)\n")
		fmt.Fprintf(stderr, "  KEYGEN_OUTPUT_FORMAT  default for -format\n")
		fmt.Fprintf(stderr, "  KEYGEN_CHECK          default for -check\n")
		fmt.Fprintf(stderr, "\nExample:\n")
		fmt.Fprintf(stderr, "  keygen\n")
		fmt.Fprintf(stderr, "  keygen -format dotenv -check\n")
	}

	showVersion := fs.Bool("version", false, "Show version")
	format := fs.String("format", cfg.OutputFormat, "Output format: console or dotenv")
	check := fs.Bool("check", cfg.Check, "Verify generated JWT secrets with an HS256 sign/verify round trip")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "CMS Keygen %s\n", version)
		return 0
	}

	logger := newLogger(cfg, stderr).With("run_id", uuid.New().String())
	slog.SetDefault(logger)

	outFormat := keyset.Format(*format)
	if outFormat != keyset.FormatConsole && outFormat != keyset.FormatDotenv {
		slog.Error("Unknown output format", "format", *format)
		fs.Usage()
		return 2
	}

	slog.Debug("Generating key set", "env", cfg.AppEnv, "format", outFormat)

	set, err := keyset.Generate(gen)
	if err != nil {
		slog.Error("Failed to generate keys", "error", err)
		return 1
	}

	if *check {
		for _, name := range keyset.SigningSecrets {
			value, ok := set.Lookup(name)
			if !ok {
				slog.Error("Unknown signing secret", "name", name)
				return 1
			}
			if err := security.ProbeSigningKey(value); err != nil {
				slog.Error("Signing secret check failed", "name", name, "error", err)
				return 1
			}
			slog.Info("Signing secret check passed", "name", name)
		}
	}

	if err := keyset.Write(stdout, set, outFormat); err != nil {
		slog.Error("Failed to write keys", "error", err)
		return 1
	}

	slog.Info("Keys generated", "entries", len(set.Entries()))
	return 0
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
