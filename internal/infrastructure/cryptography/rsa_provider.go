package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/jose-rsa/internal/pkg/logger"
)

// rsaProvider implements cryptoalg.Provider on top of crypto/rsa.
// Key handles are *rsa.PrivateKey or *rsa.PublicKey values.
type rsaProvider struct {
	logger logger.Logger
}

// NewRSAProvider creates and returns a crypto/rsa backed provider.
func NewRSAProvider(logger logger.Logger) (cryptoalg.Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaProvider{
		logger: logger,
	}, nil
}

// IsAlgorithmSupported reports whether key can perform op with scheme.
// Private keys sign and decrypt, public keys verify and encrypt.
func (p *rsaProvider) IsAlgorithmSupported(key cryptoalg.KeyHandle, op cryptoalg.OperationKind, scheme cryptoalg.SchemeID) bool {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if k == nil {
			return false
		}
		switch op {
		case cryptoalg.OperationSign:
			return scheme == cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512
		case cryptoalg.OperationDecrypt:
			return scheme == cryptoalg.SchemeRSAEncryptionPKCS1
		}
	case *rsa.PublicKey:
		if k == nil {
			return false
		}
		switch op {
		case cryptoalg.OperationVerify:
			return scheme == cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512
		case cryptoalg.OperationEncrypt:
			return scheme == cryptoalg.SchemeRSAEncryptionPKCS1
		}
	}
	return false
}

// ComputeSignature hashes data with SHA-512 and signs the digest with PKCS#1 v1.5 padding.
func (p *rsaProvider) ComputeSignature(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	privateKey, err := privateKeyFor(key, scheme, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512)
	if err != nil {
		return nil, err
	}

	hashed := sha512.Sum512(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA512, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	p.logger.Debug("Computed ", len(signature), "-byte signature with ", scheme)
	return signature, nil
}

// VerifySignature checks a PKCS#1 v1.5 SHA-512 signature over data.
// A signature that is not exactly one block long is malformed and reported as an error.
func (p *rsaProvider) VerifySignature(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data, signature []byte) (bool, error) {
	publicKey, err := publicKeyFor(key, scheme, cryptoalg.SchemeRSASignatureMessagePKCS1v15SHA512)
	if err != nil {
		return false, err
	}

	if len(signature) != publicKey.Size() {
		return false, fmt.Errorf("malformed signature: got %d bytes, want %d", len(signature), publicKey.Size())
	}

	hashed := sha512.Sum512(data)
	err = rsa.VerifyPKCS1v15(publicKey, crypto.SHA512, hashed[:], signature)
	if errors.Is(err, rsa.ErrVerification) {
		p.logger.Debug("Signature mismatch with ", scheme)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	return true, nil
}

// EncryptData encrypts data into a single PKCS#1 v1.5 block.
func (p *rsaProvider) EncryptData(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	publicKey, err := publicKeyFor(key, scheme, cryptoalg.SchemeRSAEncryptionPKCS1)
	if err != nil {
		return nil, err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	p.logger.Debug("Encrypted ", len(data), " bytes with ", scheme)
	return ciphertext, nil
}

// DecryptData decrypts a single PKCS#1 v1.5 block.
func (p *rsaProvider) DecryptData(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	privateKey, err := privateKeyFor(key, scheme, cryptoalg.SchemeRSAEncryptionPKCS1)
	if err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	p.logger.Debug("Decrypted ", len(data), " bytes with ", scheme)
	return plaintext, nil
}

// BlockSize returns the modulus length in bytes, or 0 for handles that are not RSA keys.
func (p *rsaProvider) BlockSize(key cryptoalg.KeyHandle) int {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if k == nil {
			return 0
		}
		return k.Size()
	case *rsa.PublicKey:
		if k == nil {
			return 0
		}
		return k.Size()
	default:
		return 0
	}
}

func privateKeyFor(key cryptoalg.KeyHandle, scheme, want cryptoalg.SchemeID) (*rsa.PrivateKey, error) {
	if scheme != want {
		return nil, fmt.Errorf("unsupported scheme %q", scheme)
	}
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok || privateKey == nil {
		return nil, fmt.Errorf("key handle is not an RSA private key")
	}
	return privateKey, nil
}

func publicKeyFor(key cryptoalg.KeyHandle, scheme, want cryptoalg.SchemeID) (*rsa.PublicKey, error) {
	if scheme != want {
		return nil, fmt.Errorf("unsupported scheme %q", scheme)
	}
	publicKey, ok := key.(*rsa.PublicKey)
	if !ok || publicKey == nil {
		return nil, fmt.Errorf("key handle is not an RSA public key")
	}
	return publicKey, nil
}
