//go:build unit
// +build unit

package cryptoalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureAlgorithm(t *testing.T) {
	alg, err := ParseSignatureAlgorithm("RS512")
	require.NoError(t, err)
	assert.Equal(t, RS512, alg)

	_, err = ParseSignatureAlgorithm("rs512")
	assert.ErrorIs(t, err, ErrAlgorithmNotSupported)

	_, err = ParseSignatureAlgorithm("none")
	assert.ErrorIs(t, err, ErrAlgorithmNotSupported)
}

func TestParseAsymmetricKeyAlgorithm(t *testing.T) {
	alg, err := ParseAsymmetricKeyAlgorithm("RSA1_5")
	require.NoError(t, err)
	assert.Equal(t, RSA1_5, alg)

	_, err = ParseAsymmetricKeyAlgorithm("RSA-OAEP")
	assert.ErrorIs(t, err, ErrAlgorithmNotSupported)
}

func TestOperationKindString(t *testing.T) {
	assert.Equal(t, "sign", OperationSign.String())
	assert.Equal(t, "verify", OperationVerify.String())
	assert.Equal(t, "encrypt", OperationEncrypt.String())
	assert.Equal(t, "decrypt", OperationDecrypt.String())
	assert.Equal(t, "unknown", OperationKind(0).String())
}

func TestNewProviderError(t *testing.T) {
	tests := []struct {
		name        string
		kind        error
		cause       error
		description string
	}{
		{"with description", ErrSigningFailed, errors.New("key is locked"), "key is locked"},
		{"empty description", ErrVerifyingFailed, errors.New(""), UnknownFailureDescription},
		{"no cause", ErrDecryptingFailed, nil, UnknownFailureDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError(tt.kind, tt.cause)

			assert.Equal(t, tt.description, err.Description)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.kind.Error()+": "+tt.description, err.Error())
			if tt.cause != nil {
				assert.NotErrorIs(t, err, tt.cause)
			}
		})
	}
}
