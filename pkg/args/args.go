// Package args turns command-line tokens into a password configuration.
package args

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashcracky/xkcdpwgen/pkg/structs"
)

// Usage is the help text printed for -h and --help.
var Usage = strings.Join([]string{
	"usage: xkcdpwgen [-h] [-w WORDS] [-c CAPS] [-n NUMBERS] [-s SYMBOLS]",
	"                ",
	"Generate a secure, memorable password using the XKCD method",
	"                ",
	"optional arguments:",
	"    -h, --help            show this help message and exit",
	"    -w WORDS, --words WORDS",
	"                          include WORDS words in the password (default=4)",
	"    -c CAPS, --caps CAPS  capitalize the first letter of CAPS random words",
	"                          (default=0)",
	"    -n NUMBERS, --numbers NUMBERS",
	"                          insert NUMBERS random numbers in the password",
	"                          (default=0)",
	"    -s SYMBOLS, --symbols SYMBOLS",
	"                          insert SYMBOLS random symbols in the password",
	"                          (default=0)",
}, "\n")

var (
	// ErrInvalidArgument is reported for tokens that are not a known flag.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidParameter is reported for a flag with a missing or
	// non-integer value.
	ErrInvalidParameter = errors.New("invalid parameter for an argument")
)

// ParseError describes a command-line token that could not be used.
type ParseError struct {
	Arg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Arg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful Parse. When Help is set the caller
// prints Usage and Config is left at its zero value.
type Result struct {
	Help   bool
	Config structs.Config
}

// countValue is a flag.Value writing an integer count into a Config field.
type countValue struct {
	target *int
}

func (v *countValue) String() string {
	if v == nil || v.target == nil {
		return ""
	}

	return strconv.Itoa(*v.target)
}

func (v *countValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	*v.target = n

	return nil
}

// spellings maps every accepted flag token to the flag it sets.
var spellings = map[string]string{
	"-w":        "words",
	"--words":   "words",
	"-c":        "caps",
	"--caps":    "caps",
	"-n":        "numbers",
	"--numbers": "numbers",
	"-s":        "symbols",
	"--symbols": "symbols",
}

// isHelp reports whether token asks for the help text.
func isHelp(token string) bool {
	return token == "-h" || token == "--help"
}

// Parse parses the command-line tokens, program name excluded.
//
// Help is only recognized as the first token. Tokens are scanned left to
// right; every flag consumes the following token as its integer value and
// the last occurrence of a flag wins. Values are not range checked; see
// structs.Config.Validate.
//
// Args:
// argv: []string - Command-line tokens.
//
// Returns:
// Result - The parsed configuration or a help request.
// error - *ParseError wrapping ErrInvalidArgument or ErrInvalidParameter.
func Parse(argv []string) (Result, error) {
	if len(argv) > 0 && isHelp(argv[0]) {
		return Result{Help: true}, nil
	}

	cfg := structs.DefaultConfig()

	fs := flag.NewFlagSet("xkcdpwgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&countValue{target: &cfg.Words}, "words", "")
	fs.Var(&countValue{target: &cfg.Caps}, "caps", "")
	fs.Var(&countValue{target: &cfg.Numbers}, "numbers", "")
	fs.Var(&countValue{target: &cfg.Symbols}, "symbols", "")

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		name, ok := spellings[token]
		if !ok {
			return Result{}, &ParseError{Arg: token, Err: ErrInvalidArgument}
		}

		if i+1 >= len(argv) {
			return Result{}, &ParseError{Arg: token, Err: ErrInvalidParameter}
		}

		i++

		if err := fs.Set(name, argv[i]); err != nil {
			return Result{}, &ParseError{Arg: argv[i], Err: ErrInvalidParameter}
		}
	}

	return Result{Config: cfg}, nil
}
