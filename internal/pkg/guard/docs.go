// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates, commands and queries so that zero-value instances can be told apart
// from instances built through their constructors.
package guard
