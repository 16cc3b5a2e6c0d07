//go:build tools

package tools

// Mocks in mocks/ are generated from .mockery.yaml with an installed
// mockery v3 binary, so no blank import is needed. Run: mockery
