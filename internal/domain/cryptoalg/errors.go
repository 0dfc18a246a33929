package cryptoalg

import (
	"errors"
	"fmt"
)

// UnknownFailureDescription is reported when a provider fails without a diagnostic.
const UnknownFailureDescription = "unknown error"

var (
	// ErrAlgorithmNotSupported indicates the algorithm has no native scheme or the key rejects it.
	ErrAlgorithmNotSupported = errors.New("algorithm not supported")

	// ErrPlainTextLengthNotSatisfied indicates the plaintext is too long for the key's block size.
	ErrPlainTextLengthNotSatisfied = errors.New("plaintext length not satisfied")

	// ErrCipherTextLengthNotSatisfied indicates the ciphertext is not exactly one block long.
	ErrCipherTextLengthNotSatisfied = errors.New("ciphertext length not satisfied")

	// ErrSigningFailed indicates the provider could not compute a signature.
	ErrSigningFailed = errors.New("signing failed")

	// ErrVerifyingFailed indicates the provider could not evaluate a signature.
	ErrVerifyingFailed = errors.New("verifying failed")

	// ErrEncryptingFailed indicates the provider could not encrypt.
	ErrEncryptingFailed = errors.New("encrypting failed")

	// ErrDecryptingFailed indicates the provider could not decrypt.
	ErrDecryptingFailed = errors.New("decrypting failed")
)

// ProviderError is a provider fault translated into one of the failure kinds above.
type ProviderError struct {
	Kind        error
	Description string
}

// NewProviderError wraps cause as a failure of the given kind, keeping only its description.
func NewProviderError(kind error, cause error) *ProviderError {
	description := UnknownFailureDescription
	if cause != nil && cause.Error() != "" {
		description = cause.Error()
	}
	return &ProviderError{Kind: kind, Description: description}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Description)
}

// Unwrap returns the failure kind so callers can match it with errors.Is.
func (e *ProviderError) Unwrap() error {
	return e.Kind
}
