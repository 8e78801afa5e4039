package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"
)

// passphraseEnvVar lets scripts supply the passphrase without echoing
// it into shell history via a flag.
const passphraseEnvVar = "SOUNDSEAL_PASSPHRASE"

func passphraseFlag() cli.Flag {
	return cli.StringFlag{
		Name:   "passphrase, p",
		Usage:  "passphrase (prompted interactively when omitted)",
		EnvVar: passphraseEnvVar,
	}
}

// resolvePassphrase returns the passphrase from the flag, the
// environment, or an interactive no-echo prompt. Encryption prompts
// twice so a typo does not produce an artifact nobody can open.
func resolvePassphrase(c *cli.Context, confirm bool) (string, error) {
	if p := c.String("passphrase"); p != "" {
		return p, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no passphrase given and stdin is not a terminal")
	}

	p, err := promptPassphrase("Enter passphrase: ")
	if err != nil {
		return "", err
	}

	if confirm {
		again, err := promptPassphrase("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if p != again {
			return "", errors.New("passphrases do not match")
		}
	}

	return p, nil
}

func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return string(raw), nil
}
