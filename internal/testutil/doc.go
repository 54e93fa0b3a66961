// Package testutil provides testing utilities and helpers.
//
// This package contains scripted byte streams with controllable chunk
// boundaries, failure injection, and close counting, used to test the
// streaming decoder. It provides common test fixtures for internal testing.
//
// This package is internal and should not be imported by external code.
package testutil
