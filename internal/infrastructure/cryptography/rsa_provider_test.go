//go:build unit
// +build unit

package cryptography

import (
	"crypto/rsa"
	"testing"

	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRSAProvider(t *testing.T) cryptoalg.Provider {
	t.Helper()
	provider, err := NewRSAProvider(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return provider
}

func TestNewRSAProvider_NilLogger(t *testing.T) {
	_, err := NewRSAProvider(nil)
	assert.Error(t, err)
}

func TestRSAProvider(t *testing.T) {
	provider := setupRSAProvider(t)
	privateKey, publicKey := testutil.GenerateTestKeyPair(t, testutil.TestKeySize2048)

	t.Run("IsAlgorithmSupported", func(t *testing.T) {
		sig := cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512
		enc := cryptoalg.SchemeRSAEncryptionPKCS1
		var nilPublicKey *rsa.PublicKey

		tests := []struct {
			name     string
			key      cryptoalg.KeyHandle
			op       cryptoalg.OperationKind
			scheme   cryptoalg.SchemeID
			expected bool
		}{
			{"private sign", privateKey, cryptoalg.OperationSign, sig, true},
			{"private decrypt", privateKey, cryptoalg.OperationDecrypt, enc, true},
			{"private verify", privateKey, cryptoalg.OperationVerify, sig, false},
			{"private encrypt", privateKey, cryptoalg.OperationEncrypt, enc, false},
			{"private sign with encryption scheme", privateKey, cryptoalg.OperationSign, enc, false},
			{"public verify", publicKey, cryptoalg.OperationVerify, sig, true},
			{"public encrypt", publicKey, cryptoalg.OperationEncrypt, enc, true},
			{"public sign", publicKey, cryptoalg.OperationSign, sig, false},
			{"public decrypt", publicKey, cryptoalg.OperationDecrypt, enc, false},
			{"public unknown scheme", publicKey, cryptoalg.OperationEncrypt, "rsa-encryption-oaep-sha1", false},
			{"nil public key", nilPublicKey, cryptoalg.OperationEncrypt, enc, false},
			{"foreign handle", []byte("key"), cryptoalg.OperationSign, sig, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, provider.IsAlgorithmSupported(tt.key, tt.op, tt.scheme))
			})
		}
	})

	t.Run("BlockSize", func(t *testing.T) {
		assert.Equal(t, 256, provider.BlockSize(privateKey))
		assert.Equal(t, 256, provider.BlockSize(publicKey))
		assert.Equal(t, 0, provider.BlockSize("not a key"))
	})

	t.Run("SignatureIsDeterministic", func(t *testing.T) {
		first, err := provider.ComputeSignature(privateKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"))
		require.NoError(t, err)
		second, err := provider.ComputeSignature(privateKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("WrongHandleIsAFault", func(t *testing.T) {
		_, err := provider.ComputeSignature(publicKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"))
		assert.Error(t, err)

		_, err = provider.EncryptData(publicKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"))
		assert.Error(t, err)

		_, err = provider.DecryptData(publicKey, cryptoalg.SchemeRSAEncryptionPKCS1, make([]byte, 256))
		assert.Error(t, err)
	})

	t.Run("VerifyMismatch", func(t *testing.T) {
		signature, err := provider.ComputeSignature(privateKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"))
		require.NoError(t, err)

		valid, err := provider.VerifySignature(publicKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("other"), signature)
		assert.NoError(t, err)
		assert.False(t, valid)

		valid, err = provider.VerifySignature(publicKey, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, []byte("payload"), signature[:100])
		assert.Error(t, err)
		assert.False(t, valid)
	})
}
