//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
)

func TestResolveSignatureScheme(t *testing.T) {
	scheme, ok := ResolveSignatureScheme(cryptoalg.RS512)
	assert.True(t, ok)
	assert.Equal(t, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, scheme)

	for _, alg := range []cryptoalg.SignatureAlgorithm{"PS256", "RS256", ""} {
		scheme, ok := ResolveSignatureScheme(alg)
		assert.False(t, ok, "algorithm %q should not resolve", alg)
		assert.Empty(t, scheme)
	}
}

func TestResolveEncryptionScheme(t *testing.T) {
	scheme, ok := ResolveEncryptionScheme(cryptoalg.RSA1_5)
	assert.True(t, ok)
	assert.Equal(t, cryptoalg.SchemeRSAEncryptionPKCS1, scheme)

	for _, alg := range []cryptoalg.AsymmetricKeyAlgorithm{"RSA-OAEP", "RSA-OAEP-256", ""} {
		scheme, ok := ResolveEncryptionScheme(alg)
		assert.False(t, ok, "algorithm %q should not resolve", alg)
		assert.Empty(t, scheme)
	}
}

func TestIsPlaintextLengthValid(t *testing.T) {
	tests := []struct {
		name      string
		alg       cryptoalg.AsymmetricKeyAlgorithm
		length    int
		blockSize int
		expected  bool
	}{
		{"empty", cryptoalg.RSA1_5, 0, 256, true},
		{"short", cryptoalg.RSA1_5, 5, 256, true},
		{"one below limit", cryptoalg.RSA1_5, 244, 256, true},
		{"at limit", cryptoalg.RSA1_5, 245, 256, false},
		{"above limit", cryptoalg.RSA1_5, 300, 256, false},
		{"zero block size", cryptoalg.RSA1_5, 0, 0, false},
		{"unknown algorithm", "RSA-OAEP", 5, 256, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext := bytes.Repeat([]byte{0x41}, tt.length)
			assert.Equal(t, tt.expected, IsPlaintextLengthValid(tt.alg, plaintext, tt.blockSize))
		})
	}
}

func TestIsCiphertextLengthValid(t *testing.T) {
	tests := []struct {
		name      string
		alg       cryptoalg.AsymmetricKeyAlgorithm
		length    int
		blockSize int
		expected  bool
	}{
		{"exact block", cryptoalg.RSA1_5, 256, 256, true},
		{"one short", cryptoalg.RSA1_5, 255, 256, false},
		{"one long", cryptoalg.RSA1_5, 257, 256, false},
		{"two blocks", cryptoalg.RSA1_5, 512, 256, false},
		{"empty", cryptoalg.RSA1_5, 0, 256, false},
		{"unknown algorithm", "RSA-OAEP", 256, 256, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext := bytes.Repeat([]byte{0x01}, tt.length)
			assert.Equal(t, tt.expected, IsCiphertextLengthValid(tt.alg, ciphertext, tt.blockSize))
		})
	}
}
