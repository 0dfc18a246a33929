package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeySize2048 is the modulus size used by RSA tests.
const TestKeySize2048 = 2048

// GenerateTestKeyPair generates an RSA key pair of the given size for tests.
func GenerateTestKeyPair(t *testing.T, bits int) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	return privateKey, &privateKey.PublicKey
}

// WritePrivateKeyPEM writes privateKey as a PKCS#1 "RSA PRIVATE KEY" block and returns the path.
func WritePrivateKeyPEM(t *testing.T, privateKey *rsa.PrivateKey) string {
	t.Helper()

	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)}
	return CreateTestFile(t, "private.pem", pem.EncodeToMemory(block))
}

// WritePublicKeyPEM writes publicKey as a PKIX "PUBLIC KEY" block and returns the path.
func WritePublicKeyPEM(t *testing.T, publicKey *rsa.PublicKey) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return CreateTestFile(t, "public.pem", pem.EncodeToMemory(block))
}
