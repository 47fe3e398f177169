// Package provider contains translation backends for the registry.
package provider

import "github.com/TanglawLabs/salin"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = salin.Provider
