// Package main is the entry point for the jose-rsa-cli application.
// It registers the RSA sign, verify, encrypt and decrypt commands and executes them.
package main

import (
	"errors"
	"log"
	"os"

	commands "github.com/MGTheTrain/jose-rsa/cmd/jose-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

const exitSignatureInvalid = 2

func main() {
	if err := run(); err != nil {
		if errors.Is(err, commands.ErrSignatureInvalid) {
			os.Exit(exitSignatureInvalid)
		}
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "jose-rsa-cli",
		Short: "RSA operations for JWS and JWE",
		Long: `jose-rsa-cli signs, verifies, encrypts and decrypts raw byte files with RSA keys
using JOSE algorithm names (RS512 for signatures, RSA1_5 for key encryption).

The verify command exits with status 2 when the signature is invalid and with
status 1 when verification could not be performed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.InitRSACommands(rootCmd)

	return rootCmd.Execute()
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
