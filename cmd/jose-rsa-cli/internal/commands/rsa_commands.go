package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/jose-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/jose-rsa/internal/infrastructure/keyfile"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrSignatureInvalid is returned by the verify command when the signature does not match.
var ErrSignatureInvalid = errors.New("signature is invalid")

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaOperator cryptoalg.RSAOperator
	logger      logger.Logger
}

type signRequest struct {
	Algorithm  string `validate:"required"`
	InputFile  string `validate:"required,file"`
	OutputFile string
	PrivateKey string `validate:"required,file"`
}

type verifyRequest struct {
	Algorithm     string `validate:"required"`
	InputFile     string `validate:"required,file"`
	SignatureFile string `validate:"required,file"`
	PublicKey     string `validate:"required,file"`
}

type cipherRequest struct {
	Algorithm  string `validate:"required"`
	InputFile  string `validate:"required,file"`
	OutputFile string
	KeyFile    string `validate:"required,file"`
}

// setup builds the operator once flags are parsed so logging honours the persistent flags.
func (commandHandler *RSACommandHandler) setup(cmd *cobra.Command, _ []string) error {
	settings, err := loggerSettingsFromFlags(cmd)
	if err != nil {
		return err
	}

	loggerInstance, err := setupLogger(settings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	provider, err := cryptography.NewRSAProvider(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA provider: %w", err)
	}

	rsaOperator, err := cryptography.NewRSAOperator(provider, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA operator: %w", err)
	}

	commandHandler.rsaOperator = rsaOperator
	commandHandler.logger = loggerInstance
	return nil
}

// SignCmd signs a file and writes the raw signature
func (commandHandler *RSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	request := signRequest{}
	request.Algorithm, _ = cmd.Flags().GetString("algorithm")
	request.InputFile, _ = cmd.Flags().GetString("input-file")
	request.OutputFile, _ = cmd.Flags().GetString("output-file")
	request.PrivateKey, _ = cmd.Flags().GetString("private-key")
	if err := validateRequest(request); err != nil {
		return err
	}

	algorithm, err := cryptoalg.ParseSignatureAlgorithm(request.Algorithm)
	if err != nil {
		return err
	}

	privateKey, err := keyfile.ReadPrivateKey(request.PrivateKey)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	signature, err := commandHandler.rsaOperator.Sign(data, privateKey, algorithm)
	if err != nil {
		return err
	}

	outputFile := defaultOutputFile(request.OutputFile, "sig")
	if err := os.WriteFile(outputFile, signature, 0600); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}

	commandHandler.logger.Info("Signature saved at ", outputFile)
	return nil
}

// VerifyCmd verifies a raw signature over a file
func (commandHandler *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	request := verifyRequest{}
	request.Algorithm, _ = cmd.Flags().GetString("algorithm")
	request.InputFile, _ = cmd.Flags().GetString("input-file")
	request.SignatureFile, _ = cmd.Flags().GetString("signature-file")
	request.PublicKey, _ = cmd.Flags().GetString("public-key")
	if err := validateRequest(request); err != nil {
		return err
	}

	algorithm, err := cryptoalg.ParseSignatureAlgorithm(request.Algorithm)
	if err != nil {
		return err
	}

	publicKey, err := keyfile.ReadPublicKey(request.PublicKey)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	signature, err := os.ReadFile(filepath.Clean(request.SignatureFile))
	if err != nil {
		return fmt.Errorf("failed to read signature file: %w", err)
	}

	valid, err := commandHandler.rsaOperator.Verify(data, signature, publicKey, algorithm)
	if err != nil {
		return err
	}

	if !valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
		return ErrSignatureInvalid
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	return nil
}

// EncryptCmd encrypts a file into a single RSA block
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	request, algorithm, err := readCipherRequest(cmd, "public-key")
	if err != nil {
		return err
	}

	publicKey, err := keyfile.ReadPublicKey(request.KeyFile)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ciphertext, err := commandHandler.rsaOperator.Encrypt(plaintext, publicKey, algorithm)
	if err != nil {
		return err
	}

	outputFile := defaultOutputFile(request.OutputFile, "enc")
	if err := os.WriteFile(outputFile, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write ciphertext: %w", err)
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptCmd decrypts a single RSA block from a file
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	request, algorithm, err := readCipherRequest(cmd, "private-key")
	if err != nil {
		return err
	}

	privateKey, err := keyfile.ReadPrivateKey(request.KeyFile)
	if err != nil {
		return err
	}

	ciphertext, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	plaintext, err := commandHandler.rsaOperator.Decrypt(ciphertext, privateKey, algorithm)
	if err != nil {
		return err
	}

	outputFile := defaultOutputFile(request.OutputFile, "dec")
	if err := os.WriteFile(outputFile, plaintext, 0600); err != nil {
		return fmt.Errorf("failed to write plaintext: %w", err)
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

func readCipherRequest(cmd *cobra.Command, keyFlag string) (cipherRequest, cryptoalg.AsymmetricKeyAlgorithm, error) {
	request := cipherRequest{}
	request.Algorithm, _ = cmd.Flags().GetString("algorithm")
	request.InputFile, _ = cmd.Flags().GetString("input-file")
	request.OutputFile, _ = cmd.Flags().GetString("output-file")
	request.KeyFile, _ = cmd.Flags().GetString(keyFlag)
	if err := validateRequest(request); err != nil {
		return request, "", err
	}

	algorithm, err := cryptoalg.ParseAsymmetricKeyAlgorithm(request.Algorithm)
	if err != nil {
		return request, "", err
	}
	return request, algorithm, nil
}

func defaultOutputFile(outputFile, extension string) string {
	if outputFile != "" {
		return outputFile
	}
	return fmt.Sprintf("%s.%s", uuid.New().String(), extension)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) {
	handler := &RSACommandHandler{}
	registerLoggerFlags(rootCmd)
	rootCmd.PersistentPreRunE = handler.setup

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file (JWS signing input) with an RSA private key",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().String("algorithm", cryptoalg.RS512.String(), "JWS algorithm")
	signCmd.Flags().String("input-file", "", "Path to file which needs to be signed")
	signCmd.Flags().String("output-file", "", "Path to signature output file (default <uuid>.sig)")
	signCmd.Flags().String("private-key", "", "Path to RSA private key")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over a file with an RSA public key",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().String("algorithm", cryptoalg.RS512.String(), "JWS algorithm")
	verifyCmd.Flags().String("input-file", "", "Path to file which needs to be validated")
	verifyCmd.Flags().String("signature-file", "", "Path to signature input file")
	verifyCmd.Flags().String("public-key", "", "Path to RSA public key")
	rootCmd.AddCommand(verifyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file (e.g. a JWE content encryption key) with an RSA public key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("algorithm", cryptoalg.RSA1_5.String(), "JWE key encryption algorithm")
	encryptCmd.Flags().String("input-file", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().String("output-file", "", "Path to encrypted output file (default <uuid>.enc)")
	encryptCmd.Flags().String("public-key", "", "Path to RSA public key")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with an RSA private key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("algorithm", cryptoalg.RSA1_5.String(), "JWE key encryption algorithm")
	decryptCmd.Flags().String("input-file", "", "Path to encrypted file")
	decryptCmd.Flags().String("output-file", "", "Path to decrypted output file (default <uuid>.dec)")
	decryptCmd.Flags().String("private-key", "", "Path to RSA private key")
	rootCmd.AddCommand(decryptCmd)
}
