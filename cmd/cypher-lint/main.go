/*
 * cypherparser
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Command cypher-lint reads Cypher source from stdin, reports any syntax
// diagnostics and optionally dumps the parsed AST, mirroring
// cypher-lint(1)'s flag set and exit codes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/krotik/cypherparser/cypher"
	"github.com/krotik/cypherparser/cypher/parser"
)

const (
	exitOK       = 0
	exitNoResult = 1
	exitIOError  = 2
)

// version is stamped at build time in a real release; left as a constant
// here since this module has none of libcypher-parser's autoconf plumbing.
const version = "0.1.0"

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	cmd := &cli.Command{
		Name:  "cypher-lint",
		Usage: "parse Cypher source from stdin and report diagnostics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "print version information and exit",
			},
			&cli.BoolFlag{
				Name:    "ast",
				Aliases: []string{"a"},
				Usage:   "dump the AST to stdout",
				Sources: cli.EnvVars("CYPHER_LINT_AST"),
			},
			&cli.BoolFlag{
				Name:    "colorize",
				Usage:   "colorize output and errors using ANSI escape sequences",
				Value:   envColorizeDefault(),
				Sources: cli.EnvVars("CYPHER_LINT_COLORIZE"),
			},
			&cli.IntFlag{
				Name:    "output-width",
				Usage:   "attempt to limit AST output to the given width (0 disables truncation)",
				Value:   envOutputWidthDefault(),
				Sources: cli.EnvVars("CYPHER_LINT_OUTPUT_WIDTH"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				printVersion(os.Stdout)
				return nil
			}
			code := run(cmd, logger, os.Stdin, os.Stdout, os.Stderr)
			if code != exitOK {
				os.Exit(code)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version information and exit",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					printVersion(os.Stdout)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(exitIOError)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cypher-lint: %s\n", version)
	fmt.Fprintf(w, "cypherparser: %s\n", parser.Version)
}

func run(cmd *cli.Command, logger *zap.Logger, in io.Reader, stdout, stderr io.Writer) int {
	source, err := io.ReadAll(in)
	if err != nil {
		logger.Error("reading stdin", zap.Error(err))
		return exitIOError
	}

	colorizeOutput := cmd.Bool("colorize") || isatty.IsTerminal(fdOf(stdout))
	colorizeErrors := cmd.Bool("colorize") || isatty.IsTerminal(fdOf(stderr))
	width := int(cmd.Int("output-width"))

	result := cypher.ParseString(string(source))

	errCfg := cypher.Config{Colorize: colorizeErrors, OutputWidth: width}
	for _, e := range result.Errors() {
		fmt.Fprint(stderr, renderError(e, errCfg))
	}

	if cmd.Bool("ast") {
		outCfg := cypher.Config{Colorize: colorizeOutput, OutputWidth: width}
		fmt.Fprint(stdout, result.Print(outCfg))
	}

	if len(result.Directives()) == 0 {
		return exitNoResult
	}
	return exitOK
}

func renderError(e *cypher.Error, cfg cypher.Config) string {
	var b strings.Builder
	p := parser.NewPrinter()
	p.OutputWidth = cfg.OutputWidth
	if cfg.Colorize {
		p.Scheme = parser.ANSIScheme
	}
	p.PrintError(&b, e)
	return b.String()
}

func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// envColorizeDefault / envOutputWidthDefault read CYPHER_LINT_* environment
// variables through koanf before flags are parsed, so a flag value of
// "unset" still resolves to an env-provided default per spec.md's layered
// configuration.
func envColorizeDefault() bool {
	k := koanf.New(".")
	_ = k.Load(env.Provider("CYPHER_LINT_", ".", normalizeEnvKey), nil)
	return k.Bool("colorize")
}

func envOutputWidthDefault() int64 {
	k := koanf.New(".")
	_ = k.Load(env.Provider("CYPHER_LINT_", ".", normalizeEnvKey), nil)
	if !k.Exists("output_width") {
		return 120
	}
	return int64(k.Int("output_width"))
}

func normalizeEnvKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CYPHER_LINT_"))
}
