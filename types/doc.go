// Package types contains the core data types and interfaces shared across
// the Fairhold library.
//
// It has no dependencies on other Fairhold packages, which allows internal
// packages to depend on it without importing the root package. The root
// package re-exports the most commonly used definitions via type aliases.
//
// All types in this package are plain values. The engine never mutates
// caller-owned values in place; batch operations work on copies and return
// the updated copies.
package types
