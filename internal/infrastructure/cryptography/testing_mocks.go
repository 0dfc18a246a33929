//go:build unit
// +build unit

package cryptography

import (
	"github.com/MGTheTrain/jose-rsa/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of cryptoalg.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) IsAlgorithmSupported(key cryptoalg.KeyHandle, op cryptoalg.OperationKind, scheme cryptoalg.SchemeID) bool {
	args := m.Called(key, op, scheme)
	return args.Bool(0)
}

func (m *MockProvider) ComputeSignature(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	args := m.Called(key, scheme, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProvider) VerifySignature(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data, signature []byte) (bool, error) {
	args := m.Called(key, scheme, data, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockProvider) EncryptData(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	args := m.Called(key, scheme, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProvider) DecryptData(key cryptoalg.KeyHandle, scheme cryptoalg.SchemeID, data []byte) ([]byte, error) {
	args := m.Called(key, scheme, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProvider) BlockSize(key cryptoalg.KeyHandle) int {
	args := m.Called(key)
	return args.Int(0)
}
