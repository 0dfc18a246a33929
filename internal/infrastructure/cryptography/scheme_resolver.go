package cryptography

import (
	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"
)

// pkcs1v15PaddingOverhead is the minimum PKCS#1 v1.5 encryption padding (RFC 3447, section 7.2):
// the 0x00 0x02 prefix, eight random non-zero bytes and the 0x00 separator.
const pkcs1v15PaddingOverhead = 11

// ResolveSignatureScheme returns the provider scheme for alg.
// Unknown algorithms resolve to nothing; there is no fallback scheme.
func ResolveSignatureScheme(alg cryptoalg.SignatureAlgorithm) (cryptoalg.SchemeID, bool) {
	switch alg {
	case cryptoalg.RS512:
		return cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512, true
	}
	return "", false
}

// ResolveEncryptionScheme returns the provider scheme for alg.
func ResolveEncryptionScheme(alg cryptoalg.AsymmetricKeyAlgorithm) (cryptoalg.SchemeID, bool) {
	switch alg {
	case cryptoalg.RSA1_5:
		return cryptoalg.SchemeRSAEncryptionPKCS1, true
	}
	return "", false
}

// IsPlaintextLengthValid reports whether plaintext fits a single block of a public key
// with the given block size under alg.
func IsPlaintextLengthValid(alg cryptoalg.AsymmetricKeyAlgorithm, plaintext []byte, blockSize int) bool {
	switch alg {
	case cryptoalg.RSA1_5:
		return len(plaintext) < blockSize-pkcs1v15PaddingOverhead
	}
	return false
}

// IsCiphertextLengthValid reports whether ciphertext is acceptable for a private key
// with the given block size under alg.
func IsCiphertextLengthValid(alg cryptoalg.AsymmetricKeyAlgorithm, ciphertext []byte, blockSize int) bool {
	switch alg {
	case cryptoalg.RSA1_5:
		return len(ciphertext) == blockSize
	}
	return false
}
