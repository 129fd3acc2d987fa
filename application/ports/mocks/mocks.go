// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMetrics is a mock implementation of ports.Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) UserRegistered() { m.Called() }

func (m *MockMetrics) PostCreated() { m.Called() }

func (m *MockMetrics) LikeChanged(action string) { m.Called(action) }

func (m *MockMetrics) PostPageServed() { m.Called() }

// MockPasswordHasher is a mock implementation of ports.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

// MockTokenIssuer is a mock implementation of ports.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}
