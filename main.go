// Package main controls the user interaction logic for the xkcdpwgen application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashcracky/xkcdpwgen/pkg/args"
	"github.com/hashcracky/xkcdpwgen/pkg/generate"
	"github.com/hashcracky/xkcdpwgen/pkg/random"
	"github.com/hashcracky/xkcdpwgen/pkg/structs"
	"github.com/hashcracky/xkcdpwgen/pkg/wordlist"
)

// loadWords returns the word list selected by the environment settings.
//
// Args:
// settings: structs.Settings - Environment settings.
//
// Returns:
// []string - The loaded word list.
// error - Error if the configured file cannot be used.
func loadWords(settings structs.Settings) ([]string, error) {
	if settings.WordList == "" {
		return wordlist.Default(), nil
	}

	return wordlist.Load(settings.WordList)
}

// password parses argv and produces a password, or reports that help was
// requested.
//
// Args:
// argv: []string - Command-line tokens without the program name.
//
// Returns:
// string - The generated password; empty when help was requested.
// bool - True when help was requested.
// error - Any parse, validation, resource or generation error.
func password(argv []string) (string, bool, error) {
	res, err := args.Parse(argv)
	if err != nil {
		return "", false, err
	}

	if res.Help {
		return "", true, nil
	}

	if err := res.Config.Validate(); err != nil {
		return "", false, err
	}

	settings, err := structs.LoadSettings()
	if err != nil {
		return "", false, err
	}

	words, err := loadWords(settings)
	if err != nil {
		return "", false, err
	}

	src, err := random.NewSecure()
	if err != nil {
		return "", false, err
	}

	pw, err := generate.Generate(res.Config, words, src)
	if err != nil {
		return "", false, err
	}

	return pw, false, nil
}

// run executes one invocation of the application and returns its exit
// status.
//
// Args:
// argv: []string - Command-line tokens without the program name.
// stdout: io.Writer - Destination for the password or help text.
// stderr: io.Writer - Destination for error messages.
//
// Returns:
// int - Process exit status.
func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	pw, help, err := password(argv)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s.\n", err)
		return 1
	}

	if help {
		fmt.Fprintln(stdout, args.Usage)
		return 0
	}

	fmt.Fprintln(stdout, pw)

	return 0
}

// main is the entry point for the xkcdpwgen application.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
