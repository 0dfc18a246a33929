package cryptoalg

import "fmt"

// SignatureAlgorithm identifies a JWS signing scheme by its registered name.
type SignatureAlgorithm string

// AsymmetricKeyAlgorithm identifies a JWE key encryption scheme by its registered name.
type AsymmetricKeyAlgorithm string

const (
	// RS512 is RSASSA-PKCS1-v1_5 using SHA-512.
	RS512 SignatureAlgorithm = "RS512"

	// RSA1_5 is RSAES-PKCS1-v1_5.
	RSA1_5 AsymmetricKeyAlgorithm = "RSA1_5"
)

// ParseSignatureAlgorithm returns the SignatureAlgorithm registered under name.
func ParseSignatureAlgorithm(name string) (SignatureAlgorithm, error) {
	switch SignatureAlgorithm(name) {
	case RS512:
		return RS512, nil
	}
	return "", fmt.Errorf("%w: signature algorithm %q", ErrAlgorithmNotSupported, name)
}

// ParseAsymmetricKeyAlgorithm returns the AsymmetricKeyAlgorithm registered under name.
func ParseAsymmetricKeyAlgorithm(name string) (AsymmetricKeyAlgorithm, error) {
	switch AsymmetricKeyAlgorithm(name) {
	case RSA1_5:
		return RSA1_5, nil
	}
	return "", fmt.Errorf("%w: key algorithm %q", ErrAlgorithmNotSupported, name)
}

func (a SignatureAlgorithm) String() string {
	return string(a)
}

func (a AsymmetricKeyAlgorithm) String() string {
	return string(a)
}
