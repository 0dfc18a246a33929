package cryptography

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/logger"
)

// rsaOperator implements cryptoalg.RSAOperator by resolving the JOSE algorithm, checking the
// key's capabilities and input lengths, and delegating the transform to a provider.
type rsaOperator struct {
	provider cryptoalg.Provider
	logger   logger.Logger
}

// NewRSAOperator creates and returns a new instance of rsaOperator
func NewRSAOperator(provider cryptoalg.Provider, logger logger.Logger) (cryptoalg.RSAOperator, error) {
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaOperator{
		provider: provider,
		logger:   logger,
	}, nil
}

// Sign signs signingInput with privateKey and returns the signature verbatim.
func (o *rsaOperator) Sign(signingInput []byte, privateKey cryptoalg.KeyHandle, algorithm cryptoalg.SignatureAlgorithm) ([]byte, error) {
	scheme, err := o.signatureScheme(privateKey, cryptoalg.OperationSign, algorithm)
	if err != nil {
		return nil, err
	}

	signature, err := o.provider.ComputeSignature(privateKey, scheme, signingInput)
	if err != nil || signature == nil {
		o.logger.Error("RSA signing with ", algorithm, " failed: ", err)
		return nil, cryptoalg.NewProviderError(cryptoalg.ErrSigningFailed, err)
	}

	o.logger.Info("RSA signing with ", algorithm, " succeeded")
	return signature, nil
}

// Verify reports whether signature matches verifyingInput. A mismatch is (false, nil);
// any provider fault, with or without a description, is ErrVerifyingFailed.
func (o *rsaOperator) Verify(verifyingInput, signature []byte, publicKey cryptoalg.KeyHandle, algorithm cryptoalg.SignatureAlgorithm) (bool, error) {
	scheme, err := o.signatureScheme(publicKey, cryptoalg.OperationVerify, algorithm)
	if err != nil {
		return false, err
	}

	valid, err := o.provider.VerifySignature(publicKey, scheme, verifyingInput, signature)
	if err != nil {
		o.logger.Error("RSA verification with ", algorithm, " failed: ", err)
		return false, cryptoalg.NewProviderError(cryptoalg.ErrVerifyingFailed, err)
	}

	if !valid {
		o.logger.Warn("RSA signature with ", algorithm, " is invalid")
		return false, nil
	}

	o.logger.Info("RSA signature with ", algorithm, " verified successfully")
	return true, nil
}

// Encrypt encrypts plaintext into a single block after checking it fits the public key.
func (o *rsaOperator) Encrypt(plaintext []byte, publicKey cryptoalg.KeyHandle, algorithm cryptoalg.AsymmetricKeyAlgorithm) ([]byte, error) {
	scheme, err := o.encryptionScheme(publicKey, cryptoalg.OperationEncrypt, algorithm)
	if err != nil {
		return nil, err
	}

	blockSize := o.provider.BlockSize(publicKey)
	if !IsPlaintextLengthValid(algorithm, plaintext, blockSize) {
		o.logger.Warn("Plaintext of ", len(plaintext), " bytes does not fit a ", blockSize, "-byte block with ", algorithm)
		return nil, fmt.Errorf("%w: %d bytes for a %d-byte block with %s",
			cryptoalg.ErrPlainTextLengthNotSatisfied, len(plaintext), blockSize, algorithm)
	}

	ciphertext, err := o.provider.EncryptData(publicKey, scheme, plaintext)
	if err != nil || ciphertext == nil {
		o.logger.Error("RSA encryption with ", algorithm, " failed: ", err)
		return nil, cryptoalg.NewProviderError(cryptoalg.ErrEncryptingFailed, err)
	}

	o.logger.Info("RSA encryption with ", algorithm, " succeeded")
	return ciphertext, nil
}

// Decrypt decrypts ciphertext after checking it is exactly one block of the private key.
func (o *rsaOperator) Decrypt(ciphertext []byte, privateKey cryptoalg.KeyHandle, algorithm cryptoalg.AsymmetricKeyAlgorithm) ([]byte, error) {
	scheme, err := o.encryptionScheme(privateKey, cryptoalg.OperationDecrypt, algorithm)
	if err != nil {
		return nil, err
	}

	blockSize := o.provider.BlockSize(privateKey)
	if !IsCiphertextLengthValid(algorithm, ciphertext, blockSize) {
		o.logger.Warn("Ciphertext of ", len(ciphertext), " bytes is not a ", blockSize, "-byte block with ", algorithm)
		return nil, fmt.Errorf("%w: %d bytes for a %d-byte block with %s",
			cryptoalg.ErrCipherTextLengthNotSatisfied, len(ciphertext), blockSize, algorithm)
	}

	plaintext, err := o.provider.DecryptData(privateKey, scheme, ciphertext)
	if err != nil || plaintext == nil {
		o.logger.Error("RSA decryption with ", algorithm, " failed: ", err)
		return nil, cryptoalg.NewProviderError(cryptoalg.ErrDecryptingFailed, err)
	}

	o.logger.Info("RSA decryption with ", algorithm, " succeeded")
	return plaintext, nil
}

func (o *rsaOperator) signatureScheme(key cryptoalg.KeyHandle, op cryptoalg.OperationKind, algorithm cryptoalg.SignatureAlgorithm) (cryptoalg.SchemeID, error) {
	scheme, ok := ResolveSignatureScheme(algorithm)
	if !ok {
		o.logger.Warn("No signature scheme for algorithm ", algorithm)
		return "", fmt.Errorf("%w: %q", cryptoalg.ErrAlgorithmNotSupported, algorithm)
	}
	return o.checkCapability(key, op, scheme, algorithm.String())
}

func (o *rsaOperator) encryptionScheme(key cryptoalg.KeyHandle, op cryptoalg.OperationKind, algorithm cryptoalg.AsymmetricKeyAlgorithm) (cryptoalg.SchemeID, error) {
	scheme, ok := ResolveEncryptionScheme(algorithm)
	if !ok {
		o.logger.Warn("No encryption scheme for algorithm ", algorithm)
		return "", fmt.Errorf("%w: %q", cryptoalg.ErrAlgorithmNotSupported, algorithm)
	}
	return o.checkCapability(key, op, scheme, algorithm.String())
}

func (o *rsaOperator) checkCapability(key cryptoalg.KeyHandle, op cryptoalg.OperationKind, scheme cryptoalg.SchemeID, algorithm string) (cryptoalg.SchemeID, error) {
	if !o.provider.IsAlgorithmSupported(key, op, scheme) {
		o.logger.Warn("Key does not support ", op, " with ", scheme)
		return "", fmt.Errorf("%w: key cannot %s with %q", cryptoalg.ErrAlgorithmNotSupported, op, algorithm)
	}
	o.logger.Debug("Resolved ", algorithm, " to ", scheme, " for ", op)
	return scheme, nil
}
