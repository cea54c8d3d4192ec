// Package testutil provides testing utilities for Polaris.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockFileNotFound indicates a mock file was not found (used in tests).
	ErrMockFileNotFound = errors.New("file not found")

	// ErrMockRepositoryFailed indicates a mock spec repository failure (used in tests).
	ErrMockRepositoryFailed = errors.New("repository failed")

	// ErrMockParseFailed indicates a mock parse error occurred (used in tests).
	ErrMockParseFailed = errors.New("parse failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")

	// ErrMockIO indicates a mock I/O error occurred (used in tests).
	ErrMockIO = errors.New("io error")
)
