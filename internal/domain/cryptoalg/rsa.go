package cryptoalg

// KeyHandle is an opaque reference to a private or public RSA key.
// It is owned by the Provider and only borrowed for the duration of a call.
type KeyHandle any

// SchemeID names a padding and hash combination understood by a Provider.
type SchemeID string

const (
	// SchemeRSASignatureMessagePKCS1v15SHA512 hashes the message with SHA-512 and signs it
	// with PKCS#1 v1.5 padding.
	SchemeRSASignatureMessagePKCS1v15SHA512 SchemeID = "rsa-signature-message-pkcs1v15-sha512"

	// SchemeRSAEncryptionPKCS1 encrypts a single block with PKCS#1 v1.5 padding.
	SchemeRSAEncryptionPKCS1 SchemeID = "rsa-encryption-pkcs1"
)

// OperationKind is the operation a key is queried for.
type OperationKind int

const (
	OperationSign OperationKind = iota + 1
	OperationVerify
	OperationEncrypt
	OperationDecrypt
)

func (k OperationKind) String() string {
	switch k {
	case OperationSign:
		return "sign"
	case OperationVerify:
		return "verify"
	case OperationEncrypt:
		return "encrypt"
	case OperationDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Provider performs the RSA mathematics for a key handle and scheme.
// A returned error is a fault; its message is the diagnostic description.
type Provider interface {
	// IsAlgorithmSupported reports whether key can perform op with scheme.
	IsAlgorithmSupported(key KeyHandle, op OperationKind, scheme SchemeID) bool

	// ComputeSignature signs data with a private key.
	ComputeSignature(key KeyHandle, scheme SchemeID, data []byte) ([]byte, error)

	// VerifySignature checks signature over data with a public key.
	// A mismatch is reported as (false, nil); an error means the check could not be performed.
	VerifySignature(key KeyHandle, scheme SchemeID, data, signature []byte) (bool, error)

	// EncryptData encrypts data with a public key.
	EncryptData(key KeyHandle, scheme SchemeID, data []byte) ([]byte, error)

	// DecryptData decrypts data with a private key.
	DecryptData(key KeyHandle, scheme SchemeID, data []byte) ([]byte, error)

	// BlockSize returns the modulus length of key in bytes.
	BlockSize(key KeyHandle) int
}

// RSAOperator performs RSA operations parameterized by JOSE algorithm.
// Implementations hold no per-call state and are safe for concurrent use.
type RSAOperator interface {
	// Sign signs signingInput with privateKey.
	Sign(signingInput []byte, privateKey KeyHandle, algorithm SignatureAlgorithm) ([]byte, error)

	// Verify reports whether signature is valid for verifyingInput.
	// An invalid signature returns false with a nil error.
	Verify(verifyingInput, signature []byte, publicKey KeyHandle, algorithm SignatureAlgorithm) (bool, error)

	// Encrypt encrypts plaintext into a single RSA block.
	Encrypt(plaintext []byte, publicKey KeyHandle, algorithm AsymmetricKeyAlgorithm) ([]byte, error)

	// Decrypt decrypts a single RSA block.
	Decrypt(ciphertext []byte, privateKey KeyHandle, algorithm AsymmetricKeyAlgorithm) ([]byte, error)
}
